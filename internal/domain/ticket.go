package domain

import (
	"time"

	"gorm.io/gorm"
)

// TicketStatus enumerates lifecycle states for support tickets.
type TicketStatus string

const (
	TicketStatusOpen   TicketStatus = "open"
	TicketStatusClosed TicketStatus = "closed"
)

// Ticket is a support ticket opened from a panel into its own channel.
type Ticket struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	ChannelID   string       `json:"channel_id" gorm:"type:varchar(32);not null" validate:"required"`
	AuthorID    string       `json:"author_id" gorm:"type:varchar(32);not null" validate:"required"`
	PanelTPGUID string       `json:"panel_tpguid" gorm:"column:paneltpguid;type:varchar(64);not null;index" validate:"required"`
	Status      TicketStatus `json:"status" gorm:"type:varchar(32);not null" validate:"required"`
	OpenDate    time.Time    `json:"open_date" gorm:"not null" validate:"required"`
	CloseDate   *time.Time   `json:"close_date,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (Ticket) TableName() string {
	return "tickets"
}

func (t *Ticket) BeforeSave(*gorm.DB) error {
	return Validate(t)
}

// TicketPanel configures the button that opens tickets in a guild.
type TicketPanel struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" gorm:"type:varchar(255);not null" validate:"required"`
	Value         string    `json:"value" gorm:"type:varchar(255);not null" validate:"required"`
	Description   string    `json:"description" gorm:"type:varchar(1024);not null" validate:"required"`
	ChannelPrefix string    `json:"channel_prefix" gorm:"type:varchar(64);not null" validate:"required"`
	GuildID       string    `json:"guild_id" gorm:"type:varchar(32);not null;index" validate:"required"`
	ButtonName    string    `json:"button_name" gorm:"type:varchar(80);not null" validate:"required"`
	TPGUID        string    `json:"tpguid" gorm:"column:tpguid;type:varchar(64);not null" validate:"required"`
	MessageLink   string    `json:"message_link" gorm:"type:varchar(255);not null" validate:"required"`
	Category      string    `json:"category" gorm:"type:varchar(32);not null" validate:"required"`
	LogChannel    string    `json:"log_channel" gorm:"type:varchar(32);not null" validate:"required"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (TicketPanel) TableName() string {
	return "ticket_panels"
}

func (t *TicketPanel) BeforeSave(*gorm.DB) error {
	return Validate(t)
}
