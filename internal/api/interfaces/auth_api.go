package interfaces

import (
	"context"

	"social-client/internal/model"
	"social-client/internal/transport"
)

// AuthAPI 定义认证相关的远端接口
type AuthAPI interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetProfile(ctx context.Context, id int, cred *transport.Credential) (*model.User, error)
	UpdateProfile(ctx context.Context, id int, req *model.UpdateProfileRequest, cred *transport.Credential) (*model.User, error)
}
