package claim

import (
	"time"

	claimDomain "cmcs-backend/internal/domain/claim"
	documentDomain "cmcs-backend/internal/domain/document"
)

type SubmitClaimInput struct {
	LecturerID    string
	FirstName     string
	LastName      string
	PeriodStart   time.Time
	PeriodEnd     time.Time
	HoursWorked   float64
	RatePerHour   float64
	OvertimeHours *float64
	OvertimeRate  *float64
	Description   string
}

// UploadInput carries an optional supporting document accompanying a
// submission.
type UploadInput struct {
	FileName    string
	ContentType string
	Data        []byte
}

type DocumentDTO struct {
	ID          uint   `json:"id"`
	FileName    string `json:"file_name"`
	Length      int64  `json:"length"`
	ContentType string `json:"content_type"`
}

type ClaimDTO struct {
	ID                 uint          `json:"id"`
	LecturerID         string        `json:"lecturer_id"`
	FirstName          string        `json:"first_name"`
	LastName           string        `json:"last_name"`
	PeriodStart        time.Time     `json:"period_start"`
	PeriodEnd          time.Time     `json:"period_end"`
	HoursWorked        float64       `json:"hours_worked"`
	RatePerHour        float64       `json:"rate_per_hour"`
	TotalAmount        float64       `json:"total_amount"`
	OvertimeHours      *float64      `json:"overtime_hours,omitempty"`
	OvertimeRate       *float64      `json:"overtime_rate,omitempty"`
	Description        string        `json:"description"`
	SupportingDocument *string       `json:"supporting_document,omitempty"`
	UserID             string        `json:"user_id"`
	Status             string        `json:"status"`
	SubmittedAt        time.Time     `json:"submitted_at"`
	Documents          []DocumentDTO `json:"documents,omitempty"`
}

func toDTO(c *claimDomain.Claim) *ClaimDTO {
	dto := &ClaimDTO{
		ID:                 c.ID,
		LecturerID:         c.LecturerID,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		PeriodStart:        c.PeriodStart,
		PeriodEnd:          c.PeriodEnd,
		HoursWorked:        c.HoursWorked,
		RatePerHour:        c.RatePerHour,
		TotalAmount:        c.TotalAmount,
		OvertimeHours:      c.OvertimeHours,
		OvertimeRate:       c.OvertimeRate,
		Description:        c.Description,
		SupportingDocument: c.SupportingDocument,
		UserID:             c.UserID,
		Status:             string(c.Status),
		SubmittedAt:        c.SubmittedAt,
	}
	for _, d := range c.Documents {
		dto.Documents = append(dto.Documents, toDocumentDTO(&d))
	}
	return dto
}

func toDocumentDTO(d *documentDomain.Document) DocumentDTO {
	return DocumentDTO{
		ID:          d.ID,
		FileName:    d.FileName,
		Length:      d.Length,
		ContentType: d.ContentType,
	}
}
