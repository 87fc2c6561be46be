package claimmock

import (
	"context"
	"time"

	domain "cmcs-backend/internal/domain/claim"
)

// Ensure compile-time compliance
var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies claim.Repository. Fill
// in the function fields a test needs; unfilled ones are benign no-ops
// or canceled-context errors.
type Repo struct {
	CreateFn              func(ctx context.Context, c *domain.Claim) error
	GetByIDFn             func(ctx context.Context, id uint) (*domain.Claim, error)
	SaveFn                func(ctx context.Context, c *domain.Claim) error
	ListAllFn             func(ctx context.Context) ([]domain.Claim, error)
	ListByUserIDFn        func(ctx context.Context, userID string) ([]domain.Claim, error)
	ListByUserIDInRangeFn func(ctx context.Context, userID string, start, end time.Time) ([]domain.Claim, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return nil
}

func (m *Repo) ListAll(ctx context.Context) ([]domain.Claim, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserID(ctx context.Context, userID string) ([]domain.Claim, error) {
	if m.ListByUserIDFn != nil {
		return m.ListByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) ListByUserIDInRange(ctx context.Context, userID string, start, end time.Time) ([]domain.Claim, error) {
	if m.ListByUserIDInRangeFn != nil {
		return m.ListByUserIDInRangeFn(ctx, userID, start, end)
	}
	return nil, context.Canceled
}
