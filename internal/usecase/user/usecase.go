package user

import (
	"context"
	"errors"
	"time"

	userDomain "cmcs-backend/internal/domain/user"
	"cmcs-backend/pkg/id"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("an account with this email already exists")
)

const tokenTTL = 24 * time.Hour

type UserDTO struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Usecase struct {
	users     userDomain.Repository
	jwtSecret []byte
	logger    *zap.Logger
}

func NewUsecase(users userDomain.Repository, jwtSecret string, logger *zap.Logger) *Usecase {
	return &Usecase{users: users, jwtSecret: []byte(jwtSecret), logger: logger}
}

// Login verifies credentials and issues a bearer token whose subject is
// the user's public id.
func (u *Usecase) Login(ctx context.Context, email, password string) (string, error) {
	acct, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  acct.UserID,
		"role": acct.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return "", err
	}
	u.logger.Info("user logged in", zap.String("user_id", acct.UserID))
	return signed, nil
}

// Lecturers lists every account not holding the Admin role.
func (u *Usecase) Lecturers(ctx context.Context) ([]UserDTO, error) {
	users, err := u.users.ListNonAdmins(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserDTO, 0, len(users))
	for _, usr := range users {
		out = append(out, UserDTO{UserID: usr.UserID, Email: usr.Email, Role: usr.Role})
	}
	return out, nil
}

// Register creates a lecturer account. Used by administrators to
// provision submitters.
func (u *Usecase) Register(ctx context.Context, email, password string) (*UserDTO, error) {
	_, err := u.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	acct := &userDomain.User{
		UserID:       id.NewID32(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         userDomain.RoleLecturer,
	}
	if err := u.users.Create(ctx, acct); err != nil {
		return nil, err
	}
	return &UserDTO{UserID: acct.UserID, Email: acct.Email, Role: acct.Role}, nil
}

// Seed is the idempotent bootstrap routine invoked once at process
// start: it guarantees the default admin account exists. Re-running it
// is a no-op. With no admin password configured, seeding is skipped.
func (u *Usecase) Seed(ctx context.Context, adminEmail, adminPassword string) error {
	if adminPassword == "" {
		u.logger.Warn("admin seed skipped: no SEED_ADMIN_PASSWORD configured")
		return nil
	}

	_, err := u.users.GetByEmail(ctx, adminEmail)
	switch {
	case err == nil:
		return nil // already seeded
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	acct := &userDomain.User{
		UserID:       id.NewID32(),
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         userDomain.RoleAdmin,
	}
	if err := u.users.Create(ctx, acct); err != nil {
		return err
	}
	u.logger.Info("default admin account seeded", zap.String("email", adminEmail))
	return nil
}
