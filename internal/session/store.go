package session

import (
	"sync"

	"social-client/internal/errors"
	"social-client/internal/model"
	"social-client/internal/transport"
	"social-client/internal/util"

	"go.uber.org/zap"
)

// State 定义会话状态
type State int

const (
	// StateAnonymous 未登录，无令牌无用户
	StateAnonymous State = iota
	// StateRestoring 已从持久化读到令牌，用户资料尚未拉取
	StateRestoring
	// StateAuthenticated 令牌与用户资料齐备
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateRestoring:
		return "restoring"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Store 持有当前会话状态。读操作可并发，四个修改操作串行化；
// 持久化状态只在 Bootstrap、Login、Logout 三处与内存对齐。
type Store struct {
	mu      sync.RWMutex
	state   State
	userID  int
	token   string
	user    *model.User
	persist Persistence
}

// NewStore 创建一个新的 Store 实例
func NewStore(persist Persistence) *Store {
	return &Store{persist: persist}
}

// Bootstrap 读取持久化会话并返回进入的状态。令牌与用户ID齐备时进入
// Restoring，由调用方负责拉取用户资料并调用 Login 完成恢复；
// 令牌已过期或文件损坏时清除持久化数据并保持 Anonymous。
func (s *Store) Bootstrap() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.persist.Load()
	if err != nil {
		util.Logger.Warn("会话恢复失败，已清除持久化数据", zap.Error(err))
		_ = s.persist.Clear()
		s.clearLocked()
		return s.state
	}
	if rec == nil {
		s.clearLocked()
		return s.state
	}
	if rec.AuthToken == "" || rec.UserID == 0 {
		util.Logger.Warn("持久化会话不完整，已清除", zap.Int("userId", rec.UserID))
		_ = s.persist.Clear()
		s.clearLocked()
		return s.state
	}
	if util.IsTokenExpired(rec.AuthToken) {
		util.Logger.Info("持久化令牌已过期", zap.Int("userId", rec.UserID))
		_ = s.persist.Clear()
		s.clearLocked()
		return s.state
	}

	s.userID = rec.UserID
	s.token = rec.AuthToken
	s.user = nil
	s.state = StateRestoring
	return s.state
}

// Login 设置完整会话并持久化 {userId, authToken}。幂等：重复调用
// 以新值完整替换旧值。
func (s *Store) Login(user *model.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userID = user.ID
	s.token = token
	s.user = user
	s.state = StateAuthenticated

	if err := s.persist.Save(&Persisted{UserID: user.ID, AuthToken: token}); err != nil {
		// 内存会话仍然有效，下次启动需要重新登录
		util.Logger.Warn("会话持久化失败", zap.Error(err))
		return err
	}
	return nil
}

// Logout 清除会话与持久化数据；已处于 Anonymous 时为无操作
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clearLocked()
	if err := s.persist.Clear(); err != nil {
		util.Logger.Warn("清除持久化会话失败", zap.Error(err))
		return err
	}
	return nil
}

// UpdateCurrentUser 整体替换当前用户，不触碰令牌。仅在 Authenticated
// 状态下合法，其余状态属于调用方错误，立即失败。
func (s *Store) UpdateCurrentUser(user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAuthenticated {
		return errors.New(errors.KindUnauthorized, "cannot update user outside an authenticated session")
	}
	s.user = user
	return nil
}

func (s *Store) clearLocked() {
	s.userID = 0
	s.token = ""
	s.user = nil
	s.state = StateAnonymous
}

// State 返回当前会话状态
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated 判断会话是否齐备
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state == StateAuthenticated
}

// UserID 返回当前用户ID，未登录时为0
func (s *Store) UserID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

// Token 返回当前令牌，未登录时为空串
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// CurrentUser 返回当前用户快照，可能为 nil
func (s *Store) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Credential 返回用于请求管道的认证材料，无可用凭证时为 nil
func (s *Store) Credential() *transport.Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return nil
	}
	return &transport.Credential{UserID: s.userID, Token: s.token}
}
