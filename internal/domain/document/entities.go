package document

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("document not found")

// Document is a supporting file attached to a claim. Rows are immutable
// once created; removal happens only through the owning claim's cascade.
type Document struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FileName    string    `gorm:"column:file_name;size:255;not null" json:"file_name"`
	Data        []byte    `gorm:"column:data;type:longblob;not null" json:"-"`
	Length      int64     `gorm:"column:length;not null" json:"length"`
	ContentType string    `gorm:"column:content_type;size:100;not null" json:"content_type"`
	ClaimID     uint      `gorm:"column:claim_id;not null;index" json:"claim_id"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Document) TableName() string { return "documents" }
