package model

// User 结构体表示从服务端获取的用户，取到后视为不可变值
type User struct {
	ID              int     `json:"id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	Role            string  `json:"role"`
	IsActive        bool    `json:"isActive"`
	FullName        *string `json:"fullName,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

// DisplayName 返回展示用名称，无全名时回退到用户名
func (u *User) DisplayName() string {
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	return u.Username
}

// RegisterRequest 注册请求体
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest 登录请求体，邮箱与用户名二选一
type LoginRequest struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password string  `json:"password" validate:"required"`
}

// LoginResponse 登录响应体，完整用户信息需另行拉取
type LoginResponse struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// UpdateProfileRequest 资料更新请求体
type UpdateProfileRequest struct {
	FullName        *string `json:"fullName,omitempty" validate:"omitempty,max=64"`
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty" validate:"omitempty,url"`
}
