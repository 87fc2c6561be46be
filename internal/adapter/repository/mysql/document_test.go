package mysql

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	documentDomain "cmcs-backend/internal/domain/document"

	"gorm.io/gorm"
)

func seedClaimWithDocs(t *testing.T, db *gorm.DB, names ...string) uint {
	t.Helper()
	ctx := context.Background()
	claims := NewClaimRepository(db)
	docs := NewDocumentRepository(db)

	c := makeClaim("ffffffffffffffffffffffffffffffff", time.Now().UTC())
	if err := claims.Create(ctx, c); err != nil {
		t.Fatalf("Create claim: %v", err)
	}
	for _, n := range names {
		d := &documentDomain.Document{
			FileName:    n,
			Data:        []byte("data-" + n),
			Length:      int64(len("data-" + n)),
			ContentType: "application/pdf",
			ClaimID:     c.ID,
		}
		if err := docs.Create(ctx, d); err != nil {
			t.Fatalf("Create document %s: %v", n, err)
		}
	}
	return c.ID
}

func TestDocumentRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	claimID := seedClaimWithDocs(t, db, "one.pdf")

	got, err := repo.FirstByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("FirstByClaimID: %v", err)
	}
	if !bytes.Equal(got.Data, []byte("data-one.pdf")) {
		t.Errorf("data = %q", got.Data)
	}
	if got.ContentType != "application/pdf" || got.FileName != "one.pdf" {
		t.Errorf("metadata mismatch: %+v", got)
	}
}

func TestDocumentFirstByClaimID_ReturnsOldest(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	claimID := seedClaimWithDocs(t, db, "first.pdf", "second.pdf")

	got, err := repo.FirstByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("FirstByClaimID: %v", err)
	}
	if got.FileName != "first.pdf" {
		t.Errorf("file = %q, want first.pdf", got.FileName)
	}
}

func TestDocumentListByClaimID(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)
	ctx := context.Background()

	claimID := seedClaimWithDocs(t, db, "a.pdf", "b.pdf")

	got, err := repo.ListByClaimID(ctx, claimID)
	if err != nil {
		t.Fatalf("ListByClaimID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("documents = %d, want 2", len(got))
	}
}

func TestDocumentGetByID_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewDocumentRepository(db)

	_, err := repo.GetByID(context.Background(), 424242)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
