package usermock

import (
	"context"

	domain "cmcs-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies user.Repository.
type Repo struct {
	CreateFn        func(ctx context.Context, u *domain.User) error
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	GetByUserIDFn   func(ctx context.Context, userID string) (*domain.User, error)
	ListNonAdminsFn func(ctx context.Context) ([]domain.User, error)
}

func (m *Repo) Create(ctx context.Context, u *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}

func (m *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByUserID(ctx context.Context, userID string) (*domain.User, error) {
	if m.GetByUserIDFn != nil {
		return m.GetByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListNonAdmins(ctx context.Context) ([]domain.User, error) {
	if m.ListNonAdminsFn != nil {
		return m.ListNonAdminsFn(ctx)
	}
	return nil, context.Canceled
}
