package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/staffhq/staff-bot/internal/api/dto"
	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/service"
)

// TicketsHandler exposes ticket and ticket panel queries.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// List handles GET /query/tickets.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	offset, limit, err := parsePagination(c)
	if err != nil {
		return err
	}
	tickets, err := h.tickets.List(c.UserContext(), service.TicketListFilters{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return err
	}
	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, ticketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Panels handles GET /query/ticket-panels.
func (h *TicketsHandler) Panels(c *fiber.Ctx) error {
	panels, err := h.tickets.Panels(c.UserContext(), c.Query("guild_id"))
	if err != nil {
		return err
	}
	resp := make([]dto.TicketPanelResponse, 0, len(panels))
	for i := range panels {
		resp = append(resp, ticketPanelResponse(&panels[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

func ticketResponse(t *domain.Ticket) dto.TicketResponse {
	return dto.TicketResponse{
		ID:          t.ID,
		ChannelID:   t.ChannelID,
		AuthorID:    t.AuthorID,
		PanelTPGUID: t.PanelTPGUID,
		Status:      t.Status,
		OpenDate:    t.OpenDate,
		CloseDate:   t.CloseDate,
	}
}

func ticketPanelResponse(p *domain.TicketPanel) dto.TicketPanelResponse {
	return dto.TicketPanelResponse{
		ID:            p.ID,
		Name:          p.Name,
		Value:         p.Value,
		Description:   p.Description,
		ChannelPrefix: p.ChannelPrefix,
		GuildID:       p.GuildID,
		ButtonName:    p.ButtonName,
		TPGUID:        p.TPGUID,
		MessageLink:   p.MessageLink,
		Category:      p.Category,
		LogChannel:    p.LogChannel,
	}
}
