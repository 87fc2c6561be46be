package mysql

import (
	"context"

	documentDomain "cmcs-backend/internal/domain/document"

	"gorm.io/gorm"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) GetByID(ctx context.Context, id uint) (*documentDomain.Document, error) {
	var out documentDomain.Document
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) FirstByClaimID(ctx context.Context, claimID uint) (*documentDomain.Document, error) {
	var out documentDomain.Document
	res := r.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) ListByClaimID(ctx context.Context, claimID uint) ([]documentDomain.Document, error) {
	var out []documentDomain.Document
	res := r.db.WithContext(ctx).
		Where("claim_id = ?", claimID).
		Order("id ASC").
		Find(&out)
	return out, res.Error
}
