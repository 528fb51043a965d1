package handler

import (
	"context"

	"github.com/itchan-dev/forumapi/shared/domain"
)

type MockThreadService struct {
	MockAdd func(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
}

func (m *MockThreadService) Add(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	if m.MockAdd != nil {
		return m.MockAdd(ctx, payload, owner)
	}
	return domain.AddedThread{}, nil
}

type MockUserService struct {
	MockRegister func(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(ctx, payload)
	}
	return domain.RegisteredUser{}, nil
}

type MockAuthService struct {
	MockLogin   func(ctx context.Context, payload domain.Payload) (domain.NewAuth, error)
	MockRefresh func(ctx context.Context, payload domain.Payload) (domain.AccessToken, error)
	MockLogout  func(ctx context.Context, payload domain.Payload) error
}

func (m *MockAuthService) Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	if m.MockLogin != nil {
		return m.MockLogin(ctx, payload)
	}
	return domain.NewAuth{}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, payload domain.Payload) (domain.AccessToken, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(ctx, payload)
	}
	return "", nil
}

func (m *MockAuthService) Logout(ctx context.Context, payload domain.Payload) error {
	if m.MockLogout != nil {
		return m.MockLogout(ctx, payload)
	}
	return nil
}
