package claim

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, c *Claim) error
	GetByID(ctx context.Context, id uint) (*Claim, error)
	Save(ctx context.Context, c *Claim) error

	// ListAll returns every claim, newest submission first.
	ListAll(ctx context.Context) ([]Claim, error)

	// ListByUserID returns a submitter's claims with documents preloaded.
	ListByUserID(ctx context.Context, userID string) ([]Claim, error)

	// ListByUserIDInRange filters on SubmittedAt within [start, end],
	// both bounds inclusive.
	ListByUserIDInRange(ctx context.Context, userID string, start, end time.Time) ([]Claim, error)
}
