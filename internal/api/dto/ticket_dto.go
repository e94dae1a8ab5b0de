package dto

import (
	"time"

	"github.com/staffhq/staff-bot/internal/domain"
)

// TicketResponse is a support ticket.
type TicketResponse struct {
	ID          uint                `json:"id"`
	ChannelID   string              `json:"channel_id"`
	AuthorID    string              `json:"author_id"`
	PanelTPGUID string              `json:"panel_tpguid"`
	Status      domain.TicketStatus `json:"status"`
	OpenDate    time.Time           `json:"open_date"`
	CloseDate   *time.Time          `json:"close_date,omitempty"`
}

// TicketPanelResponse is a ticket panel configuration.
type TicketPanelResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Value         string `json:"value"`
	Description   string `json:"description"`
	ChannelPrefix string `json:"channel_prefix"`
	GuildID       string `json:"guild_id"`
	ButtonName    string `json:"button_name"`
	TPGUID        string `json:"tpguid"`
	MessageLink   string `json:"message_link"`
	Category      string `json:"category"`
	LogChannel    string `json:"log_channel"`
}
