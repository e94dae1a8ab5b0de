package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStrikeIssued  EventType = "strike_issued"
	EventCensureIssued EventType = "censure_issued"
	EventPIPIssued     EventType = "pip_issued"
	EventBreakRecorded EventType = "break_recorded"
)

// Actor identifies who caused an event on Discord.
type Actor struct {
	DiscordID string `json:"discord_id"`
	Username  string `json:"username,omitempty"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string    `json:"id"`
	Type        EventType `json:"type"`
	StaffFileID uint      `json:"staff_file_id"`
	Actor       Actor     `json:"actor"`
	Timestamp   time.Time `json:"timestamp"`
	Payload     any       `json:"payload"`
}

// New stamps an event with a fresh id and the current time.
func New(eventType EventType, staffFileID uint, actor Actor, payload any) Event {
	return Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		StaffFileID: staffFileID,
		Actor:       actor,
		Timestamp:   time.Now().UTC(),
		Payload:     payload,
	}
}

// DisciplinePayload describes a strike, censure or PIP.
type DisciplinePayload struct {
	StaffName    string  `json:"staff_name"`
	Details      string  `json:"details"`
	EvidenceLink *string `json:"evidence_link,omitempty"`
	Total        int     `json:"total"`
}

// BreakPayload describes a recorded leave period.
type BreakPayload struct {
	StaffName string    `json:"staff_name"`
	From      time.Time `json:"from"`
	To        time.Time `json:"to"`
	Reason    string    `json:"reason"`
}
