package domain

import (
	"time"

	"gorm.io/gorm"
)

// Position is a job title, optionally owned by a department.
type Position struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Title        string    `json:"title" gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,max=255"`
	DepartmentID *uint     `json:"department_id,omitempty" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Department *Department `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
}

func (Position) TableName() string {
	return "positions"
}

func (p *Position) BeforeSave(*gorm.DB) error {
	return Validate(p)
}

// PositionHistory records one tenure in a position. Title, Dept and Team are
// denormalized so the entry survives renames.
type PositionHistory struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Title        string     `json:"title" gorm:"type:varchar(255);not null" validate:"required"`
	Dept         string     `json:"dept" gorm:"type:varchar(255);not null" validate:"required"`
	Team         *string    `json:"team,omitempty" gorm:"type:varchar(255)"`
	Joined       time.Time  `json:"joined" gorm:"not null" validate:"required"`
	Quit         *time.Time `json:"quit,omitempty"`
	StaffFileID  uint       `json:"staff_file_id" gorm:"not null;index"`
	PositionID   *uint      `json:"position_id,omitempty" gorm:"index"`
	DepartmentID *uint      `json:"department_id,omitempty" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Position   *Position   `json:"-" gorm:"foreignKey:PositionID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	Department *Department `json:"-" gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
}

func (PositionHistory) TableName() string {
	return "position_histories"
}

func (p *PositionHistory) BeforeSave(*gorm.DB) error {
	return Validate(p)
}
