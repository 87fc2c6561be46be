package mysql

import (
	"context"
	"time"

	claimDomain "cmcs-backend/internal/domain/claim"

	"gorm.io/gorm"
)

type ClaimRepository struct{ db *gorm.DB }

func NewClaimRepository(db *gorm.DB) *ClaimRepository { return &ClaimRepository{db: db} }

func (r *ClaimRepository) Create(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClaimRepository) Save(ctx context.Context, c *claimDomain.Claim) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *ClaimRepository) GetByID(ctx context.Context, id uint) (*claimDomain.Claim, error) {
	var out claimDomain.Claim
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *ClaimRepository) ListAll(ctx context.Context) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).Order("submitted_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListByUserID(ctx context.Context, userID string) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Preload("Documents").
		Where("user_id = ?", userID).
		Order("submitted_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *ClaimRepository) ListByUserIDInRange(ctx context.Context, userID string, start, end time.Time) ([]claimDomain.Claim, error) {
	var out []claimDomain.Claim
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND submitted_at >= ? AND submitted_at <= ?", userID, start, end).
		Order("submitted_at ASC, id ASC").
		Find(&out)
	return out, res.Error
}
