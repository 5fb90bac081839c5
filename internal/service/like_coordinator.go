package service

import (
	"context"
	"sync"

	"social-client/internal/session"
	"social-client/internal/util"

	"go.uber.org/zap"
)

// LikeToggler 是协调器依赖的最小变更接口，由 FeedService 满足
type LikeToggler interface {
	LikePost(ctx context.Context, id int) error
	UnlikePost(ctx context.Context, id int) error
}

// LikeCoordinator 负责点赞状态的乐观更新：本地状态立即翻转，
// 失败时回滚；同一帖子同时最多只允许一个在途切换，后到的请求
// 直接拒绝并维持原状态，而不是排队。
type LikeCoordinator struct {
	feed  LikeToggler
	store *session.Store

	// OnChange 在乐观翻转与回滚时各触发一次，是可见点赞状态的唯一写入口
	OnChange func(postID int, liked bool)

	mu       sync.Mutex
	inFlight map[int]struct{}
}

// NewLikeCoordinator 创建一个新的 LikeCoordinator 实例
func NewLikeCoordinator(feed LikeToggler, store *session.Store) *LikeCoordinator {
	return &LikeCoordinator{
		feed:     feed,
		store:    store,
		inFlight: make(map[int]struct{}),
	}
}

// ToggleLike 切换帖子的点赞状态，返回最终确认的状态。
// 未登录或同帖已有在途切换时不发起网络调用，原样返回当前状态；
// 网络调用失败时回滚到切换前状态。
func (c *LikeCoordinator) ToggleLike(ctx context.Context, postID int, currentlyLiked bool) bool {
	if !c.store.IsAuthenticated() {
		util.Logger.Debug("未登录，忽略点赞切换", zap.Int("postId", postID))
		return currentlyLiked
	}

	if !c.begin(postID) {
		util.Logger.Debug("同帖切换尚在进行，拒绝本次请求", zap.Int("postId", postID))
		return currentlyLiked
	}
	// 无论成败都要释放在途标记，否则该帖的点赞永久锁死
	defer c.end(postID)

	target := !currentlyLiked
	c.notify(postID, target)

	var err error
	if currentlyLiked {
		err = c.feed.UnlikePost(ctx, postID)
	} else {
		err = c.feed.LikePost(ctx, postID)
	}
	if err != nil {
		util.Logger.Warn("点赞切换失败，回滚",
			zap.Int("postId", postID),
			zap.Bool("revertTo", currentlyLiked),
			zap.Error(err))
		c.notify(postID, currentlyLiked)
		return currentlyLiked
	}
	return target
}

// begin 尝试登记在途标记，该帖已有在途切换时返回 false
func (c *LikeCoordinator) begin(postID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inFlight[postID]; ok {
		return false
	}
	c.inFlight[postID] = struct{}{}
	return true
}

func (c *LikeCoordinator) end(postID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, postID)
}

func (c *LikeCoordinator) notify(postID int, liked bool) {
	if c.OnChange != nil {
		c.OnChange(postID, liked)
	}
}
