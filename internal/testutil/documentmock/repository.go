package documentmock

import (
	"context"

	domain "cmcs-backend/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies document.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, d *domain.Document) error
	GetByIDFn        func(ctx context.Context, id uint) (*domain.Document, error)
	FirstByClaimIDFn func(ctx context.Context, claimID uint) (*domain.Document, error)
	ListByClaimIDFn  func(ctx context.Context, claimID uint) ([]domain.Document, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Document, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) FirstByClaimID(ctx context.Context, claimID uint) (*domain.Document, error) {
	if m.FirstByClaimIDFn != nil {
		return m.FirstByClaimIDFn(ctx, claimID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByClaimID(ctx context.Context, claimID uint) ([]domain.Document, error) {
	if m.ListByClaimIDFn != nil {
		return m.ListByClaimIDFn(ctx, claimID)
	}
	return nil, context.Canceled
}
