package domain

import (
	"time"

	"gorm.io/gorm"
)

// StaffFile is a person's HR record. Most other entities hang off it.
type StaffFile struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null;uniqueIndex" validate:"required,max=255"`
	PersonalEmail  *string   `json:"personal_email,omitempty" gorm:"type:varchar(255)" validate:"omitempty,email"`
	CompanyEmail   *string   `json:"company_email,omitempty" gorm:"type:varchar(255)" validate:"omitempty,email"`
	PhotoLink      *string   `json:"photo_link,omitempty" gorm:"type:varchar(255)"`
	Phone          *string   `json:"phone,omitempty" gorm:"type:varchar(255)"`
	LegalSex       *string   `json:"legal_sex,omitempty" gorm:"type:varchar(255)"`
	GenderIdentity *string   `json:"gender_identity,omitempty" gorm:"type:varchar(255)"`
	Ethnicity      *string   `json:"ethnicity,omitempty" gorm:"type:varchar(255)"`
	AppStatus      *string   `json:"app_status,omitempty" gorm:"type:varchar(255)"`
	Strikes        int       `json:"strikes" gorm:"not null;default:0" validate:"gte=0"`
	Censures       int       `json:"censures" gorm:"not null;default:0" validate:"gte=0"`
	PIPs           int       `json:"pips" gorm:"column:pips;not null;default:0" validate:"gte=0"`
	ActivityStatus *string   `json:"activity_status,omitempty" gorm:"type:varchar(255)"`
	Alumni         bool      `json:"alumni" gorm:"not null;default:false"`
	TeamID         *uint     `json:"team_id,omitempty" gorm:"index"`
	DepartmentID   *uint     `json:"department_id,omitempty" gorm:"index"`
	SupervisorID   *uint     `json:"supervisor_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Team               *Team               `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	Department         *Department         `json:"department,omitempty" gorm:"foreignKey:DepartmentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	Supervisor         *Supervisor         `json:"supervisor,omitempty" gorm:"foreignKey:SupervisorID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	DiscordInformation *DiscordInformation `json:"discord,omitempty" gorm:"foreignKey:StaffFileID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" validate:"-"`
	Positions          []Position          `json:"positions,omitempty" gorm:"many2many:position_staff" validate:"-"`
	PositionHistories  []PositionHistory   `json:"position_history,omitempty" gorm:"foreignKey:StaffFileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
	StrikeHistory      []StrikeHistory     `json:"strike_history,omitempty" gorm:"foreignKey:StaffFileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
	CensureHistory     []CensureHistory    `json:"censure_history,omitempty" gorm:"foreignKey:StaffFileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
	PIPHistory         []PIPHistory        `json:"pip_history,omitempty" gorm:"foreignKey:StaffFileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
	BreakRecords       []BreakRecord       `json:"breaks,omitempty" gorm:"foreignKey:StaffFileID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" validate:"-"`
}

func (StaffFile) TableName() string {
	return "staff_files"
}

func (s *StaffFile) BeforeSave(*gorm.DB) error {
	return Validate(s)
}
