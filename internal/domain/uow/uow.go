package uow

import (
	"context"

	"cmcs-backend/internal/domain/claim"
	"cmcs-backend/internal/domain/document"
)

type Repos struct {
	Claims    claim.Repository
	Documents document.Repository
}

// UnitOfWork runs fn with all repositories bound to one transaction.
// Claim submission relies on this so the claim row and its document row
// commit or roll back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
}
