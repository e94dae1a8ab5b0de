package domain

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a sub-group under a department.
type Team struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	DepartmentID *uint     `json:"department_id,omitempty" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Department  *Department  `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	Supervisors []Supervisor `json:"supervisors,omitempty" gorm:"many2many:team_supervisors" validate:"-"`
}

func (Team) TableName() string {
	return "teams"
}

func (t *Team) BeforeSave(*gorm.DB) error {
	return Validate(t)
}
