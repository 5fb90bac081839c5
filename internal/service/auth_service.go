package service

import (
	"context"
	"strings"

	"social-client/internal/api/interfaces"
	"social-client/internal/errors"
	"social-client/internal/model"
	"social-client/internal/session"
	"social-client/internal/transport"
	"social-client/internal/util"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// AuthService 处理注册、登录、会话恢复与资料维护
type AuthService struct {
	api      interfaces.AuthAPI
	store    *session.Store
	validate *validator.Validate
}

// NewAuthService 创建一个新的 AuthService 实例
func NewAuthService(api interfaces.AuthAPI, store *session.Store) *AuthService {
	return &AuthService{
		api:      api,
		store:    store,
		validate: validator.New(),
	}
}

// Register 注册新用户。注册成功不自动登录，调用方需随后调用 Login
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	req := &model.RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Wrap(errors.KindInvalidRequest, "invalid registration input", err)
	}

	user, err := s.api.Register(ctx, req)
	if err != nil {
		util.Logger.Warn("注册失败", zap.String("username", username), zap.Error(err))
		return nil, err
	}

	util.Logger.Info("注册成功", zap.Int("userId", user.ID))
	return user, nil
}

// Login 用邮箱或用户名登录。登录响应只携带令牌与基本字段，
// 完整用户资料需再拉取一次，两步都成功后才写入会话。
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	if identifier == "" || password == "" {
		return nil, errors.New(errors.KindInvalidRequest, "identifier and password are required")
	}

	req := &model.LoginRequest{Password: password}
	if strings.Contains(identifier, "@") {
		req.Email = &identifier
	} else {
		req.Username = &identifier
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		util.Logger.Warn("登录失败", zap.Error(err))
		return nil, err
	}

	// 登录响应携带的令牌立即用于后续拉取，令牌无效时在这里就暴露
	cred := &transport.Credential{UserID: resp.ID, Token: resp.Token}
	user, err := s.api.GetProfile(ctx, resp.ID, cred)
	if err != nil {
		util.Logger.Warn("登录后拉取用户资料失败", zap.Int("userId", resp.ID), zap.Error(err))
		return nil, err
	}

	if err := s.store.Login(user, resp.Token); err != nil {
		// 持久化失败不影响本次会话
		util.Logger.Warn("会话持久化失败", zap.Error(err))
	}

	util.Logger.Info("登录成功", zap.Int("userId", user.ID))
	return user, nil
}

// RestoreSession 完成 Bootstrap 之后的会话恢复：用持久化的用户ID
// 拉取资料并转入 Authenticated。任何失败都会回退到 Anonymous。
func (s *AuthService) RestoreSession(ctx context.Context) (*model.User, error) {
	if s.store.State() != session.StateRestoring {
		return nil, errors.New(errors.KindUnauthorized, "no session to restore")
	}

	userID := s.store.UserID()
	token := s.store.Token()

	// 必须携带存储的令牌，让服务端在恢复时就校验它是否仍然有效
	user, err := s.api.GetProfile(ctx, userID, s.store.Credential())
	if err != nil {
		util.Logger.Warn("会话恢复失败", zap.Int("userId", userID), zap.Error(err))
		_ = s.store.Logout()
		return nil, err
	}

	if err := s.store.Login(user, token); err != nil {
		util.Logger.Warn("会话持久化失败", zap.Error(err))
	}

	util.Logger.Info("会话恢复成功", zap.Int("userId", user.ID))
	return user, nil
}

// GetProfile 拉取任意用户的资料，已登录时附带当前凭证
func (s *AuthService) GetProfile(ctx context.Context, id int) (*model.User, error) {
	return s.api.GetProfile(ctx, id, s.store.Credential())
}

// UpdateProfile 更新当前用户资料并整体替换会话中的用户快照
func (s *AuthService) UpdateProfile(ctx context.Context, fullName, bio, profileImageURL *string) (*model.User, error) {
	if !s.store.IsAuthenticated() {
		return nil, errors.New(errors.KindUnauthorized, "login required to update profile")
	}

	req := &model.UpdateProfileRequest{
		FullName:        fullName,
		Bio:             bio,
		ProfileImageURL: profileImageURL,
	}
	if err := s.validate.Struct(req); err != nil {
		return nil, errors.Wrap(errors.KindInvalidRequest, "invalid profile input", err)
	}

	user, err := s.api.UpdateProfile(ctx, s.store.UserID(), req, s.store.Credential())
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateCurrentUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout 退出登录并清除持久化会话
func (s *AuthService) Logout() error {
	return s.store.Logout()
}
