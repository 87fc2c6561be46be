package claim

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	claimDomain "cmcs-backend/internal/domain/claim"
	documentDomain "cmcs-backend/internal/domain/document"
	"cmcs-backend/internal/domain/uow"
	"cmcs-backend/internal/infrastructure/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrNoSubmitter blocks submission when no authenticated identity
	// is available; nothing is persisted.
	ErrNoSubmitter = errors.New("user must be logged in to submit a claim")

	ErrInvalidFileType = errors.New("invalid file type")
	ErrInvalidMIMEType = errors.New("invalid MIME type")

	ErrEmptyStatus = errors.New("new status must not be empty")
)

// RuleError carries business-rule violations; a submission that raises
// one is rejected without persisting anything.
type RuleError struct {
	Violations []claimDomain.RuleViolation
}

func (e *RuleError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

// The extension and MIME allow-lists are carried over verbatim from the
// system this replaces. They are knowingly inconsistent: .docx and .xlsx
// have no matching MIME entry, and image/gif has no matching extension.
var (
	permittedExtensions = map[string]struct{}{
		".jpg": {}, ".jpeg": {}, ".png": {}, ".docx": {}, ".xlsx": {}, ".pdf": {},
	}
	permittedMIMETypes = map[string]struct{}{
		"image/jpeg": {}, "image/png": {}, "image/gif": {}, "application/pdf": {},
	}
)

type Usecase struct {
	claims claimDomain.Repository
	docs   documentDomain.Repository
	uow    uow.UnitOfWork
	store  storage.DocumentStore
	logger *zap.Logger
}

func NewUsecase(claims claimDomain.Repository, docs documentDomain.Repository, tx uow.UnitOfWork, store storage.DocumentStore, logger *zap.Logger) *Usecase {
	return &Usecase{claims: claims, docs: docs, uow: tx, store: store, logger: logger}
}

// Submit runs the whole submission workflow: identity check, business
// rules, upload allow-lists, total computation, then one transaction
// covering the claim row and — when a file accompanies it — the document
// row and the disk write.
func (u *Usecase) Submit(ctx context.Context, submitterID string, in SubmitClaimInput, file *UploadInput) (*ClaimDTO, error) {
	if submitterID == "" {
		return nil, ErrNoSubmitter
	}

	now := time.Now().UTC()
	c := &claimDomain.Claim{
		LecturerID:    in.LecturerID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		PeriodStart:   in.PeriodStart,
		PeriodEnd:     in.PeriodEnd,
		HoursWorked:   in.HoursWorked,
		RatePerHour:   in.RatePerHour,
		OvertimeHours: in.OvertimeHours,
		OvertimeRate:  in.OvertimeRate,
		Description:   in.Description,
		UserID:        submitterID,
		Status:        claimDomain.StatusPending,
		SubmittedAt:   now,
	}

	if violations := claimDomain.ValidateRules(c); len(violations) > 0 {
		return nil, &RuleError{Violations: violations}
	}

	hasFile := file != nil && len(file.Data) > 0
	var storedName string
	if hasFile {
		ext := strings.ToLower(filepath.Ext(file.FileName))
		if _, ok := permittedExtensions[ext]; ext == "" || !ok {
			return nil, ErrInvalidFileType
		}
		if _, ok := permittedMIMETypes[file.ContentType]; !ok {
			return nil, ErrInvalidMIMEType
		}
		label := documentLabel(c, now, file.Data)
		c.SupportingDocument = &label
		storedName = uuid.NewString() + ext
	}

	c.TotalAmount = c.GrossPay()

	var fileWritten bool
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Claims.Create(ctx, c); err != nil {
			return err
		}
		if !hasFile {
			return nil
		}
		if err := u.store.Save(storedName, file.Data); err != nil {
			return err
		}
		fileWritten = true
		return r.Documents.Create(ctx, &documentDomain.Document{
			FileName:    storedName,
			Data:        file.Data,
			Length:      int64(len(file.Data)),
			ContentType: file.ContentType,
			ClaimID:     c.ID,
		})
	})
	if err != nil {
		// The rollback undoes the rows but not the disk write.
		if fileWritten {
			if rmErr := u.store.Remove(storedName); rmErr != nil {
				u.logger.Warn("orphaned document left on disk",
					zap.String("file", storedName), zap.Error(rmErr))
			}
		}
		u.logger.Error("claim submission failed", zap.Error(err))
		return nil, err
	}

	u.logger.Info("claim submitted",
		zap.Uint("claim_id", c.ID),
		zap.String("user_id", submitterID),
		zap.Bool("has_document", hasFile))
	return toDTO(c), nil
}

// documentLabel builds the cosmetic supporting-document label: a prefix
// of submission metadata plus a truncated base64 encoding of the bytes.
// It is never used for retrieval.
func documentLabel(c *claimDomain.Claim, submitted time.Time, data []byte) string {
	encoded := base64.StdEncoding.EncodeToString(data)
	if len(encoded) > 17 {
		encoded = encoded[:17]
	}
	shortID := uuid.NewString()[:8]
	return fmt.Sprintf("[%s]-%s_%s_%s_%s",
		submitted.Format(time.RFC3339), c.FirstName, c.LastName, shortID, encoded)
}

func (u *Usecase) Get(ctx context.Context, id uint) (*ClaimDTO, error) {
	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claimDomain.ErrNotFound
		}
		return nil, err
	}
	return toDTO(c), nil
}

func (u *Usecase) ListAll(ctx context.Context) ([]ClaimDTO, error) {
	claims, err := u.claims.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ClaimDTO, 0, len(claims))
	for i := range claims {
		out = append(out, *toDTO(&claims[i]))
	}
	return out, nil
}

// History returns the submitter's own claims with document metadata.
func (u *Usecase) History(ctx context.Context, userID string) ([]ClaimDTO, error) {
	claims, err := u.claims.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]ClaimDTO, 0, len(claims))
	for i := range claims {
		out = append(out, *toDTO(&claims[i]))
	}
	return out, nil
}

func (u *Usecase) Approve(ctx context.Context, id uint) (*ClaimDTO, error) {
	return u.setStatus(ctx, id, claimDomain.StatusApproved)
}

func (u *Usecase) Reject(ctx context.Context, id uint) (*ClaimDTO, error) {
	return u.setStatus(ctx, id, claimDomain.StatusRejected)
}

// UpdateStatus is the generic transition endpoint's backend. The status
// set is closed; the original accepted arbitrary strings here.
func (u *Usecase) UpdateStatus(ctx context.Context, id uint, newStatus string) (*ClaimDTO, error) {
	if newStatus == "" {
		return nil, ErrEmptyStatus
	}
	s := claimDomain.Status(newStatus)
	if !claimDomain.ValidStatus(s) {
		return nil, claimDomain.ErrInvalidStatus
	}
	return u.setStatus(ctx, id, s)
}

func (u *Usecase) setStatus(ctx context.Context, id uint, s claimDomain.Status) (*ClaimDTO, error) {
	c, err := u.claims.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, claimDomain.ErrNotFound
		}
		return nil, err
	}
	c.Status = s
	if err := u.claims.Save(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("claim status updated",
		zap.Uint("claim_id", c.ID),
		zap.String("status", string(s)))
	return toDTO(c), nil
}

// DocumentByClaimID returns the first document a claim owns — the
// download-by-claim route keeps the original first-match behavior.
func (u *Usecase) DocumentByClaimID(ctx context.Context, claimID uint) (*documentDomain.Document, error) {
	d, err := u.docs.FirstByClaimID(ctx, claimID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documentDomain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}

func (u *Usecase) Document(ctx context.Context, id uint) (*documentDomain.Document, error) {
	d, err := u.docs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, documentDomain.ErrNotFound
		}
		return nil, err
	}
	return d, nil
}
