package service

import (
	"context"
	"strings"

	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/repository"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// TicketService exposes ticket records and their panels.
type TicketService struct {
	tickets repository.TicketRepository
}

// TicketListFilters describes ticket listing filters.
type TicketListFilters struct {
	Status string
	Limit  int
	Offset int
}

// NewTicketService constructs the service.
func NewTicketService(tickets repository.TicketRepository) *TicketService {
	return &TicketService{tickets: tickets}
}

// List returns tickets, optionally narrowed to one status.
func (s *TicketService) List(ctx context.Context, filters TicketListFilters) ([]domain.Ticket, error) {
	repoFilter := repository.TicketFilter{Limit: filters.Limit, Offset: filters.Offset}
	if raw := strings.ToLower(strings.TrimSpace(filters.Status)); raw != "" {
		status := domain.TicketStatus(raw)
		switch status {
		case domain.TicketStatusOpen, domain.TicketStatusClosed:
		default:
			return nil, apperrors.NewValidationError("invalid status", map[string]any{"status": filters.Status})
		}
		repoFilter.Status = &status
	}
	tickets, err := s.tickets.List(ctx, repoFilter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return tickets, nil
}

// Panels returns ticket panels, optionally for one guild.
func (s *TicketService) Panels(ctx context.Context, guildID string) ([]domain.TicketPanel, error) {
	panels, err := s.tickets.Panels(ctx, strings.TrimSpace(guildID))
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return panels, nil
}
