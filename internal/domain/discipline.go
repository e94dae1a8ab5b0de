package domain

import (
	"time"

	"gorm.io/gorm"
)

// DisciplineEntry is the shape shared by strike, censure and PIP history.
// Administrator holds the Discord id of whoever issued the entry.
type DisciplineEntry struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Details       string    `json:"details" gorm:"type:varchar(1024);not null" validate:"required,max=1024"`
	DateGiven     time.Time `json:"date_given" gorm:"not null" validate:"required"`
	Administrator string    `json:"administrator" gorm:"type:varchar(32);not null" validate:"required"`
	EvidenceLink  *string   `json:"evidence_link,omitempty" gorm:"type:varchar(1024)"`
	StaffFileID   uint      `json:"staff_file_id" gorm:"not null;index"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type StrikeHistory struct {
	DisciplineEntry `gorm:"embedded"`
}

func (StrikeHistory) TableName() string {
	return "strike_histories"
}

func (h *StrikeHistory) BeforeSave(*gorm.DB) error {
	return Validate(h)
}

type CensureHistory struct {
	DisciplineEntry `gorm:"embedded"`
}

func (CensureHistory) TableName() string {
	return "censure_histories"
}

func (h *CensureHistory) BeforeSave(*gorm.DB) error {
	return Validate(h)
}

type PIPHistory struct {
	DisciplineEntry `gorm:"embedded"`
}

func (PIPHistory) TableName() string {
	return "pip_histories"
}

func (h *PIPHistory) BeforeSave(*gorm.DB) error {
	return Validate(h)
}

// BreakRecord is an approved leave period. Approval holds the approver's Discord id.
type BreakRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	DateFrom    time.Time `json:"date_from" gorm:"not null" validate:"required"`
	DateTo      time.Time `json:"date_to" gorm:"not null" validate:"required,gtefield=DateFrom"`
	Reason      string    `json:"reason" gorm:"type:varchar(1024);not null" validate:"required,max=1024"`
	Approval    string    `json:"approval" gorm:"type:varchar(32);not null" validate:"required"`
	StaffFileID uint      `json:"staff_file_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (BreakRecord) TableName() string {
	return "break_records"
}

func (b *BreakRecord) BeforeSave(*gorm.DB) error {
	return Validate(b)
}
