package rest

import (
	"context"
	"net/http"

	"social-client/internal/model"
	"social-client/internal/transport"
)

// AuthAPI 是 interfaces.AuthAPI 的 REST 实现
type AuthAPI struct {
	client    *transport.Client
	endpoints transport.Endpoints
}

// NewAuthAPI 创建一个新的 AuthAPI 实例
func NewAuthAPI(client *transport.Client) *AuthAPI {
	return &AuthAPI{
		client:    client,
		endpoints: transport.NewEndpoints(client.BaseURL()),
	}
}

// Register 注册新用户
func (a *AuthAPI) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	user, err := transport.Execute[model.RegisterRequest, model.User](
		ctx, a.client, http.MethodPost, a.endpoints.Register(), req, nil)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login 登录并取得令牌
func (a *AuthAPI) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	resp, err := transport.Execute[model.LoginRequest, model.LoginResponse](
		ctx, a.client, http.MethodPost, a.endpoints.Login(), req, nil)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile 拉取用户资料；cred 为 nil 时按公开资料请求
func (a *AuthAPI) GetProfile(ctx context.Context, id int, cred *transport.Credential) (*model.User, error) {
	user, err := transport.Execute[transport.Empty, model.User](
		ctx, a.client, http.MethodGet, a.endpoints.Profile(id), nil, cred)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile 更新用户资料，返回替换后的完整用户
func (a *AuthAPI) UpdateProfile(ctx context.Context, id int, req *model.UpdateProfileRequest, cred *transport.Credential) (*model.User, error) {
	user, err := transport.Execute[model.UpdateProfileRequest, model.User](
		ctx, a.client, http.MethodPut, a.endpoints.Profile(id), req, cred)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
