package interfaces

import (
	"context"

	"social-client/internal/model"
	"social-client/internal/transport"
)

// FeedAPI 定义帖子与评论相关的远端接口
type FeedAPI interface {
	FetchFeed(ctx context.Context) ([]model.PostDTO, error)
	FetchPost(ctx context.Context, id int) (*model.PostDTO, error)
	CreatePost(ctx context.Context, req *model.CreatePostRequest, cred *transport.Credential) (*model.PostDTO, error)
	DeletePost(ctx context.Context, id int, cred *transport.Credential) (string, error)
	LikePost(ctx context.Context, id int, cred *transport.Credential) error
	UnlikePost(ctx context.Context, id int, cred *transport.Credential) error
	AddComment(ctx context.Context, postID int, req *model.CreateCommentRequest, cred *transport.Credential) (*model.Comment, error)
	FetchComments(ctx context.Context, postID int) ([]model.Comment, error)
}
