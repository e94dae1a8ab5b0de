package domain

import (
	"time"

	"gorm.io/gorm"
)

// Department represents an organizational unit, optionally run by a supervisor.
type Department struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,max=255"`
	SupervisorID *uint     `json:"supervisor_id,omitempty" gorm:"index"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Supervisor *Supervisor `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	Teams      []Team      `json:"teams,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
}

func (Department) TableName() string {
	return "departments"
}

func (d *Department) BeforeSave(*gorm.DB) error {
	return Validate(d)
}
