package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	claimDomain "cmcs-backend/internal/domain/claim"

	"go.uber.org/zap"
)

// ErrNoClaimsInRange signals an empty report range; no document is
// produced.
var ErrNoClaimsInRange = errors.New("no claims found within the specified date range")

type Input struct {
	LecturerID string
	StartDate  time.Time // calendar date, inclusive
	EndDate    time.Time // calendar date, inclusive (covers the whole day)
}

// File is a generated report ready for download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Usecase struct {
	claims claimDomain.Repository
	logger *zap.Logger
}

func NewUsecase(claims claimDomain.Repository, logger *zap.Logger) *Usecase {
	return &Usecase{claims: claims, logger: logger}
}

// Generate renders the payroll-style PDF for one lecturer's claims
// submitted within the date range.
func (u *Usecase) Generate(ctx context.Context, in Input) (*File, error) {
	claims, err := u.rangeClaims(ctx, in)
	if err != nil {
		return nil, err
	}
	if len(claims) == 0 {
		return nil, ErrNoClaimsInRange
	}

	var approved, other []claimDomain.Claim
	for _, c := range claims {
		if c.Status == claimDomain.StatusApproved {
			approved = append(approved, c)
		} else {
			other = append(other, c)
		}
	}

	data, err := renderPDF(approved, other, in.StartDate, in.EndDate)
	if err != nil {
		u.logger.Error("report rendering failed", zap.Error(err))
		return nil, err
	}

	u.logger.Info("report generated",
		zap.String("lecturer_id", in.LecturerID),
		zap.Int("approved", len(approved)),
		zap.Int("other", len(other)))

	return &File{
		Name: fmt.Sprintf("claim%s-%s.pdf",
			in.StartDate.Format("20060102"), in.EndDate.Format("20060102")),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

// ClaimsExist reports whether the range holds any claims at all; the UI
// probes this before requesting a download.
func (u *Usecase) ClaimsExist(ctx context.Context, in Input) (bool, error) {
	claims, err := u.rangeClaims(ctx, in)
	if err != nil {
		return false, err
	}
	return len(claims) > 0, nil
}

func (u *Usecase) rangeClaims(ctx context.Context, in Input) ([]claimDomain.Claim, error) {
	// The end date is a calendar day; stretch it to its last instant so
	// submissions later that day still fall inside the range.
	end := in.EndDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return u.claims.ListByUserIDInRange(ctx, in.LecturerID, in.StartDate, end)
}
