package domain

import (
	"time"

	"gorm.io/gorm"
)

// Supervisor is a supervisory role. The staff file holding it points at it
// through StaffFile.SupervisorID; the teams it oversees go through the
// team_supervisors junction.
type Supervisor struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Departments []Department `json:"departments,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
}

func (Supervisor) TableName() string {
	return "supervisors"
}

func (s *Supervisor) BeforeSave(*gorm.DB) error {
	return Validate(s)
}
