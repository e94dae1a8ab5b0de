package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// TicketRepository handles persistence for tickets and ticket panels.
type TicketRepository interface {
	Store[domain.Ticket]
	List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
	GetByChannel(ctx context.Context, channelID string) (*domain.Ticket, error)
	Close(ctx context.Context, id uint, at time.Time) (*domain.Ticket, error)
	CreatePanel(ctx context.Context, panel *domain.TicketPanel) error
	Panels(ctx context.Context, guildID string) ([]domain.TicketPanel, error)
	PanelByTPGUID(ctx context.Context, tpguid string) (*domain.TicketPanel, error)
}

// TicketFilter defines query params for ticket listing.
type TicketFilter struct {
	Status   *domain.TicketStatus
	AuthorID string
	TPGUID   string
	Limit    int
	Offset   int
}

type ticketRepository struct {
	crud[domain.Ticket]
}

// NewTicketRepository instantiates the repository.
func NewTicketRepository(db *gorm.DB) TicketRepository {
	return &ticketRepository{crud[domain.Ticket]{db: db, resource: "ticket"}}
}

func (r *ticketRepository) List(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	query := r.db.WithContext(ctx).Model(&domain.Ticket{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}
	if filter.TPGUID != "" {
		query = query.Where("paneltpguid = ?", filter.TPGUID)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var tickets []domain.Ticket
	err := query.Order("open_date DESC").Limit(limit).Offset(offset).Find(&tickets).Error
	return tickets, err
}

func (r *ticketRepository) GetByChannel(ctx context.Context, channelID string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := r.db.WithContext(ctx).Where("channel_id = ?", channelID).First(&ticket).Error; err != nil {
		return nil, r.notFound(err, "channel_id", channelID)
	}
	return &ticket, nil
}

// Close marks a ticket closed. Closing an already closed ticket keeps its
// original close date.
func (r *ticketRepository) Close(ctx context.Context, id uint, at time.Time) (*domain.Ticket, error) {
	ticket, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ticket.Status == domain.TicketStatusClosed {
		return ticket, nil
	}
	ticket.Status = domain.TicketStatusClosed
	ticket.CloseDate = &at
	if err := r.Update(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

func (r *ticketRepository) CreatePanel(ctx context.Context, panel *domain.TicketPanel) error {
	return r.db.WithContext(ctx).Create(panel).Error
}

func (r *ticketRepository) Panels(ctx context.Context, guildID string) ([]domain.TicketPanel, error) {
	query := r.db.WithContext(ctx).Model(&domain.TicketPanel{})
	if guildID != "" {
		query = query.Where("guild_id = ?", guildID)
	}
	var panels []domain.TicketPanel
	err := query.Order("name ASC").Find(&panels).Error
	return panels, err
}

func (r *ticketRepository) PanelByTPGUID(ctx context.Context, tpguid string) (*domain.TicketPanel, error) {
	var panel domain.TicketPanel
	if err := r.db.WithContext(ctx).Where("tpguid = ?", tpguid).First(&panel).Error; err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewNotFound("ticket panel", map[string]any{"tpguid": tpguid})
		}
		return nil, err
	}
	return &panel, nil
}
