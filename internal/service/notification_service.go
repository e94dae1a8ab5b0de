package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/events"
)

// ChannelPoster is the slice of the Discord session used for audit posts.
type ChannelPoster interface {
	ChannelMessageSend(channelID, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// NotificationService relays discipline events to the audit channel.
type NotificationService struct {
	dispatcher events.Dispatcher
	poster     ChannelPoster
	channelID  string
	logger     *zap.Logger
}

// NewNotificationService creates the service. An empty channelID keeps the
// handlers logging only.
func NewNotificationService(dispatcher events.Dispatcher, poster ChannelPoster, channelID string, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		poster:     poster,
		channelID:  strings.TrimSpace(channelID),
		logger:     logger,
	}
}

// EventTypes lists the events Handle understands.
func (n *NotificationService) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventStrikeIssued,
		events.EventCensureIssued,
		events.EventPIPIssued,
		events.EventBreakRecorded,
	}
}

// Handle delivers one event.
func (n *NotificationService) Handle(ctx context.Context, event events.Event) error {
	switch event.Type {
	case events.EventStrikeIssued:
		return n.handleDiscipline("Strike")(ctx, event)
	case events.EventCensureIssued:
		return n.handleDiscipline("Censure")(ctx, event)
	case events.EventPIPIssued:
		return n.handleDiscipline("PIP")(ctx, event)
	case events.EventBreakRecorded:
		return n.handleBreak(ctx, event)
	default:
		return nil
	}
}

// RegisterHandlers subscribes Handle synchronously on the dispatcher.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	for _, t := range n.EventTypes() {
		n.dispatcher.Subscribe(t, n.Handle)
	}
}

func (n *NotificationService) handleDiscipline(label string) events.EventHandler {
	return func(ctx context.Context, event events.Event) error {
		n.logger.Info("discipline recorded",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Uint("staff_file_id", event.StaffFileID),
			zap.String("issuer", event.Actor.DiscordID))

		payload, ok := event.Payload.(events.DisciplinePayload)
		if !ok {
			return nil
		}
		msg := fmt.Sprintf("**%s issued** to %s by <@%s> (total: %d)\n> %s",
			label, payload.StaffName, event.Actor.DiscordID, payload.Total, payload.Details)
		if payload.EvidenceLink != nil && *payload.EvidenceLink != "" {
			msg += "\nEvidence: " + *payload.EvidenceLink
		}
		return n.post(event, msg)
	}
}

func (n *NotificationService) handleBreak(ctx context.Context, event events.Event) error {
	n.logger.Info("break recorded", zap.String("event_id", event.ID), zap.Uint("staff_file_id", event.StaffFileID))
	payload, ok := event.Payload.(events.BreakPayload)
	if !ok {
		return nil
	}
	msg := fmt.Sprintf("**Break approved** for %s by <@%s>: %s to %s\n> %s",
		payload.StaffName, event.Actor.DiscordID,
		payload.From.Format("2006-01-02"), payload.To.Format("2006-01-02"), payload.Reason)
	return n.post(event, msg)
}

func (n *NotificationService) post(event events.Event, msg string) error {
	if n.channelID == "" || n.poster == nil {
		return nil
	}
	if _, err := n.poster.ChannelMessageSend(n.channelID, msg); err != nil {
		n.logger.Warn("audit post failed", zap.String("event_id", event.ID), zap.Error(err))
		return fmt.Errorf("post %s to audit channel: %w", event.Type, err)
	}
	return nil
}
