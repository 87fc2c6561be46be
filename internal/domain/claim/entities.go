package claim

import (
	"errors"
	"time"

	"cmcs-backend/internal/domain/document"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidStatus reports whether s belongs to the closed status set. The
// generic status-update endpoint enforces this; the original system
// accepted arbitrary strings.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

var (
	ErrNotFound      = errors.New("claim not found")
	ErrInvalidStatus = errors.New("invalid claim status")
)

// Claim is a lecturer's submitted record of hours worked for a pay
// period, pending administrative review.
type Claim struct {
	ID                 uint                `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	LecturerID         string              `gorm:"column:lecturer_id;size:64;not null" json:"lecturer_id"`
	FirstName          string              `gorm:"column:first_name;size:100;not null" json:"first_name"`
	LastName           string              `gorm:"column:last_name;size:100;not null" json:"last_name"`
	PeriodStart        time.Time           `gorm:"column:period_start;not null" json:"period_start"`
	PeriodEnd          time.Time           `gorm:"column:period_end;not null" json:"period_end"`
	HoursWorked        float64             `gorm:"column:hours_worked;not null" json:"hours_worked"`
	RatePerHour        float64             `gorm:"column:rate_per_hour;not null" json:"rate_per_hour"`
	TotalAmount        float64             `gorm:"column:total_amount;not null" json:"total_amount"`
	OvertimeHours      *float64            `gorm:"column:overtime_hours" json:"overtime_hours,omitempty"`
	OvertimeRate       *float64            `gorm:"column:overtime_rate" json:"overtime_rate,omitempty"`
	Description        string              `gorm:"column:description;type:text" json:"description"`
	SupportingDocument *string             `gorm:"column:supporting_document;size:255" json:"supporting_document,omitempty"`
	UserID             string              `gorm:"column:user_id;size:32;not null;index:idx_claims_user" json:"user_id"`
	Status             Status              `gorm:"column:status;size:20;not null;default:'Pending'" json:"status"`
	SubmittedAt        time.Time           `gorm:"column:submitted_at;not null;index" json:"submitted_at"`
	CreatedAt          time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	Documents          []document.Document `gorm:"foreignKey:ClaimID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
}

func (Claim) TableName() string { return "claims" }

// OvertimePay counts overtime only when both hours and rate are set.
func (c *Claim) OvertimePay() float64 {
	if c.OvertimeHours != nil && c.OvertimeRate != nil {
		return *c.OvertimeHours * *c.OvertimeRate
	}
	return 0
}

// GrossPay is hours × rate plus overtime pay.
func (c *Claim) GrossPay() float64 {
	return c.HoursWorked*c.RatePerHour + c.OvertimePay()
}
