package user

import "context"

type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByUserID(ctx context.Context, userID string) (*User, error)

	// ListNonAdmins returns every account not holding the Admin role;
	// backs the lecturer picker for report generation.
	ListNonAdmins(ctx context.Context) ([]User, error)
}
