package domain

import (
	"time"

	"gorm.io/gorm"
)

// DiscordInformation links a staff file to a Discord account.
type DiscordInformation struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Username    string    `json:"username" gorm:"type:varchar(255);not null" validate:"required,discord_tag"`
	DiscordID   string    `json:"discord_id" gorm:"type:varchar(32);not null;uniqueIndex" validate:"required,snowflake"`
	StaffFileID *uint     `json:"staff_file_id,omitempty" gorm:"uniqueIndex"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (DiscordInformation) TableName() string {
	return "discord_informations"
}

func (d *DiscordInformation) BeforeSave(*gorm.DB) error {
	return Validate(d)
}
