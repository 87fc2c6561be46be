package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error

	// GetByID fetches one document by its own id.
	GetByID(ctx context.Context, id uint) (*Document, error)

	// FirstByClaimID returns the first document owned by a claim. The
	// download-by-claim route deliberately keeps this first-match
	// behavior from the original system.
	FirstByClaimID(ctx context.Context, claimID uint) (*Document, error)

	ListByClaimID(ctx context.Context, claimID uint) ([]Document, error)
}
