package model

// Post 领域模型，只能经由 PostDTO 校验转换得到
type Post struct {
	ID        int     `json:"id"`
	UserID    int     `json:"userId"`
	Content   string  `json:"content"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	CreatedAt string  `json:"createdAt"`
	Author    User    `json:"user"`
	IsLiked   bool    `json:"isLiked"`
}

// PostDTO 服务端原始载荷，除作者外所有字段都可能缺失
type PostDTO struct {
	ID        *int    `json:"id"`
	UserID    *int    `json:"userId"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"imageUrl"`
	CreatedAt *string `json:"createdAt"`
	Author    User    `json:"user"`
	IsLiked   *bool   `json:"isLiked"`
}

// ToDomain 将 DTO 转换为领域模型；缺少 id 或 userId 的记录视为无效，返回 nil。
// 其余缺失字段回退到安全默认值。
func (d *PostDTO) ToDomain() *Post {
	if d.ID == nil || d.UserID == nil {
		return nil
	}

	post := &Post{
		ID:       *d.ID,
		UserID:   *d.UserID,
		ImageURL: d.ImageURL,
		Author:   d.Author,
	}
	if d.Content != nil {
		post.Content = *d.Content
	}
	if d.CreatedAt != nil {
		post.CreatedAt = *d.CreatedAt
	}
	if d.IsLiked != nil {
		post.IsLiked = *d.IsLiked
	}
	return post
}

// Comment 评论模型，作者信息为冗余快照
type Comment struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	PostID    int    `json:"postId"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
	Author    User   `json:"user"`
}

// CreatePostRequest 发帖请求体。内容的非空校验是调用方的职责，
// 仓储层信任输入契约，这里不带校验标签
type CreatePostRequest struct {
	Content  string  `json:"content"`
	ImageURL *string `json:"imageUrl,omitempty"`
}

// CreateCommentRequest 评论请求体
type CreateCommentRequest struct {
	Content string `json:"content"`
}
