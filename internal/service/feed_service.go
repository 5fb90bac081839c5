package service

import (
	"context"

	"social-client/internal/api/interfaces"
	"social-client/internal/errors"
	"social-client/internal/model"
	"social-client/internal/session"
	"social-client/internal/transport"
	"social-client/internal/util"

	"go.uber.org/zap"
)

// FeedService 处理帖子与评论的获取和变更。所有变更操作要求会话处于
// Authenticated，否则在发起网络调用前直接失败。
type FeedService struct {
	api   interfaces.FeedAPI
	store *session.Store
}

// NewFeedService 创建一个新的 FeedService 实例
func NewFeedService(api interfaces.FeedAPI, store *session.Store) *FeedService {
	return &FeedService{
		api:   api,
		store: store,
	}
}

// FetchFeed 拉取帖子列表并转换为领域模型。缺少 id 或 userId 的
// 单条记录只丢弃并记录日志，不让整次拉取失败。
func (s *FeedService) FetchFeed(ctx context.Context) ([]model.Post, error) {
	dtos, err := s.api.FetchFeed(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]model.Post, 0, len(dtos))
	for i := range dtos {
		post := dtos[i].ToDomain()
		if post == nil {
			util.Logger.Warn("丢弃无效的帖子记录", zap.Int("index", i))
			continue
		}
		posts = append(posts, *post)
	}
	return posts, nil
}

// FetchPost 拉取单个帖子
func (s *FeedService) FetchPost(ctx context.Context, id int) (*model.Post, error) {
	dto, err := s.api.FetchPost(ctx, id)
	if err != nil {
		return nil, err
	}
	post := dto.ToDomain()
	if post == nil {
		return nil, errors.New(errors.KindDecoding, "post payload missing required fields")
	}
	return post, nil
}

// CreatePost 发布帖子。content 的非空校验由调用方负责，这里信任输入契约
func (s *FeedService) CreatePost(ctx context.Context, content string, imageURL *string) (*model.Post, error) {
	cred, err := s.requireAuth()
	if err != nil {
		return nil, err
	}

	dto, err := s.api.CreatePost(ctx, &model.CreatePostRequest{Content: content, ImageURL: imageURL}, cred)
	if err != nil {
		return nil, err
	}
	post := dto.ToDomain()
	if post == nil {
		return nil, errors.New(errors.KindDecoding, "post payload missing required fields")
	}
	return post, nil
}

// DeletePost 删除帖子，返回服务端的确认字符串
func (s *FeedService) DeletePost(ctx context.Context, id int) (string, error) {
	cred, err := s.requireAuth()
	if err != nil {
		return "", err
	}
	return s.api.DeletePost(ctx, id, cred)
}

// LikePost 点赞。对已点赞帖子重复点赞由服务端决定语义，这里不做去重
func (s *FeedService) LikePost(ctx context.Context, id int) error {
	cred, err := s.requireAuth()
	if err != nil {
		return err
	}
	return s.api.LikePost(ctx, id, cred)
}

// UnlikePost 取消点赞
func (s *FeedService) UnlikePost(ctx context.Context, id int) error {
	cred, err := s.requireAuth()
	if err != nil {
		return err
	}
	return s.api.UnlikePost(ctx, id, cred)
}

// AddComment 添加评论
func (s *FeedService) AddComment(ctx context.Context, postID int, content string) (*model.Comment, error) {
	cred, err := s.requireAuth()
	if err != nil {
		return nil, err
	}
	return s.api.AddComment(ctx, postID, &model.CreateCommentRequest{Content: content}, cred)
}

// FetchComments 拉取帖子的评论列表
func (s *FeedService) FetchComments(ctx context.Context, postID int) ([]model.Comment, error) {
	return s.api.FetchComments(ctx, postID)
}

// requireAuth 在发起网络调用前校验会话，未登录立即失败
func (s *FeedService) requireAuth() (*transport.Credential, error) {
	if !s.store.IsAuthenticated() {
		return nil, errors.New(errors.KindUnauthorized, "login required")
	}
	return s.store.Credential(), nil
}
