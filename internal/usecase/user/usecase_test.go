package user

import (
	"context"
	"errors"
	"testing"

	userDomain "cmcs-backend/internal/domain/user"
	"cmcs-backend/internal/testutil/usermock"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const secret = "test-secret"

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return string(h)
}

func TestLogin_Success_TokenCarriesSubjectAndRole(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return &userDomain.User{
				UserID:       "cccccccccccccccccccccccccccccccc",
				Email:        email,
				PasswordHash: hash(t, "pass123"),
				Role:         userDomain.RoleLecturer,
			}, nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	signed, err := uc.Login(context.Background(), "l@cmcs.local", "pass123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	tok, err := jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	claims := tok.Claims.(jwt.MapClaims)
	if claims["sub"] != "cccccccccccccccccccccccccccccccc" {
		t.Fatalf("sub = %v", claims["sub"])
	}
	if claims["role"] != userDomain.RoleLecturer {
		t.Fatalf("role = %v", claims["role"])
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return &userDomain.User{PasswordHash: hash(t, "right")}, nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	_, err := uc.Login(context.Background(), "l@cmcs.local", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	_, err := uc.Login(context.Background(), "nobody@cmcs.local", "x")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLecturers_ExcludesAdmins(t *testing.T) {
	users := &usermock.Repo{
		ListNonAdminsFn: func(ctx context.Context) ([]userDomain.User, error) {
			return []userDomain.User{
				{UserID: "u1", Email: "a@cmcs.local", Role: userDomain.RoleLecturer},
				{UserID: "u2", Email: "b@cmcs.local", Role: userDomain.RoleLecturer},
			}, nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	got, err := uc.Lecturers(context.Background())
	if err != nil {
		t.Fatalf("Lecturers: %v", err)
	}
	if len(got) != 2 || got[0].Email != "a@cmcs.local" {
		t.Fatalf("lecturers = %+v", got)
	}
}

func TestSeed_CreatesAdminOnce(t *testing.T) {
	var created *userDomain.User
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			if created != nil {
				return created, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	if err := uc.Seed(context.Background(), "admin@cmcs.local", "Admin123!"); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if created == nil || created.Role != userDomain.RoleAdmin {
		t.Fatalf("admin not created: %+v", created)
	}
	if len(created.UserID) != 32 {
		t.Fatalf("admin public id = %q", created.UserID)
	}
	if bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("Admin123!")) != nil {
		t.Fatal("seeded password hash does not verify")
	}

	// Second run must not create another account.
	first := created
	if err := uc.Seed(context.Background(), "admin@cmcs.local", "Admin123!"); err != nil {
		t.Fatalf("Seed (rerun): %v", err)
	}
	if created != first {
		t.Fatal("Seed re-created the admin account")
	}
}

func TestSeed_SkippedWithoutPassword(t *testing.T) {
	users := &usermock.Repo{
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			t.Fatal("Create must not be called when seeding is skipped")
			return nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	if err := uc.Seed(context.Background(), "admin@cmcs.local", ""); err != nil {
		t.Fatalf("Seed: %v", err)
	}
}

func TestRegister_CreatesLecturer(t *testing.T) {
	var created *userDomain.User
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			created = u
			return nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	dto, err := uc.Register(context.Background(), "new@cmcs.local", "pw")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if created.Role != userDomain.RoleLecturer || dto.Role != userDomain.RoleLecturer {
		t.Fatalf("role = %q / %q, want Lecturer", created.Role, dto.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	users := &usermock.Repo{
		GetByEmailFn: func(ctx context.Context, email string) (*userDomain.User, error) {
			return &userDomain.User{Email: email, Role: userDomain.RoleLecturer}, nil
		},
		CreateFn: func(ctx context.Context, u *userDomain.User) error {
			t.Fatal("Create must not be called for a taken email")
			return nil
		},
	}
	uc := NewUsecase(users, secret, zap.NewNop())

	_, err := uc.Register(context.Background(), "taken@cmcs.local", "pw")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("err = %v, want ErrEmailTaken", err)
	}
}
