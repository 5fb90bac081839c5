package rest

import (
	"context"
	"net/http"

	"social-client/internal/model"
	"social-client/internal/transport"
)

// FeedAPI 是 interfaces.FeedAPI 的 REST 实现
type FeedAPI struct {
	client    *transport.Client
	endpoints transport.Endpoints
}

// NewFeedAPI 创建一个新的 FeedAPI 实例
func NewFeedAPI(client *transport.Client) *FeedAPI {
	return &FeedAPI{
		client:    client,
		endpoints: transport.NewEndpoints(client.BaseURL()),
	}
}

// FetchFeed 拉取帖子列表原始载荷
func (a *FeedAPI) FetchFeed(ctx context.Context) ([]model.PostDTO, error) {
	return transport.Execute[transport.Empty, []model.PostDTO](
		ctx, a.client, http.MethodGet, a.endpoints.Posts(), nil, nil)
}

// FetchPost 拉取单个帖子原始载荷
func (a *FeedAPI) FetchPost(ctx context.Context, id int) (*model.PostDTO, error) {
	dto, err := transport.Execute[transport.Empty, model.PostDTO](
		ctx, a.client, http.MethodGet, a.endpoints.Post(id), nil, nil)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// CreatePost 发布帖子
func (a *FeedAPI) CreatePost(ctx context.Context, req *model.CreatePostRequest, cred *transport.Credential) (*model.PostDTO, error) {
	dto, err := transport.Execute[model.CreatePostRequest, model.PostDTO](
		ctx, a.client, http.MethodPost, a.endpoints.Posts(), req, cred)
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// DeletePost 删除帖子，服务端返回裸确认字符串
func (a *FeedAPI) DeletePost(ctx context.Context, id int, cred *transport.Credential) (string, error) {
	return transport.Execute[transport.Empty, string](
		ctx, a.client, http.MethodDelete, a.endpoints.Post(id), nil, cred)
}

// LikePost 点赞。服务端只返回确认字符串，这里丢弃
func (a *FeedAPI) LikePost(ctx context.Context, id int, cred *transport.Credential) error {
	_, err := transport.Execute[transport.Empty, string](
		ctx, a.client, http.MethodPost, a.endpoints.Like(id), nil, cred)
	return err
}

// UnlikePost 取消点赞
func (a *FeedAPI) UnlikePost(ctx context.Context, id int, cred *transport.Credential) error {
	_, err := transport.Execute[transport.Empty, string](
		ctx, a.client, http.MethodDelete, a.endpoints.Like(id), nil, cred)
	return err
}

// AddComment 添加评论
func (a *FeedAPI) AddComment(ctx context.Context, postID int, req *model.CreateCommentRequest, cred *transport.Credential) (*model.Comment, error) {
	comment, err := transport.Execute[model.CreateCommentRequest, model.Comment](
		ctx, a.client, http.MethodPost, a.endpoints.Comments(postID), req, cred)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// FetchComments 拉取帖子的评论列表
func (a *FeedAPI) FetchComments(ctx context.Context, postID int) ([]model.Comment, error) {
	return transport.Execute[transport.Empty, []model.Comment](
		ctx, a.client, http.MethodGet, a.endpoints.Comments(postID), nil, nil)
}
