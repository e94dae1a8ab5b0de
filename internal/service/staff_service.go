package service

import (
	"context"
	"strings"
	"time"

	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/events"
	"github.com/staffhq/staff-bot/internal/repository"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// StaffService reads staff files and records discipline against them.
type StaffService struct {
	repos      *repository.Repositories
	cache      *LookupCache
	dispatcher events.Dispatcher
	now        func() time.Time
}

// StaffListFilters define listing parameters.
type StaffListFilters struct {
	Name         string
	DepartmentID *uint
	TeamID       *uint
	Alumni       *bool
	Limit        int
	Offset       int
}

// StrikeInput describes a strike issued from Discord.
type StrikeInput struct {
	TargetDiscordID string
	Details         string
	EvidenceLink    *string
	Issuer          events.Actor
}

// NewStaffService constructs the service. cache and dispatcher may be nil.
func NewStaffService(repos *repository.Repositories, cache *LookupCache, dispatcher events.Dispatcher) *StaffService {
	return &StaffService{
		repos:      repos,
		cache:      cache,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// ProfileByDiscordID resolves the staff file linked to a Discord account,
// consulting the lookup cache first.
func (s *StaffService) ProfileByDiscordID(ctx context.Context, discordID string) (*domain.StaffFile, error) {
	discordID = strings.TrimSpace(discordID)
	if !domain.IsSnowflake(discordID) {
		return nil, apperrors.NewValidationError("invalid discord id", map[string]any{"discord_id": discordID})
	}
	if staff, ok := s.cache.Get(ctx, discordID); ok {
		return staff, nil
	}
	staff, err := s.repos.Staff.GetByDiscordID(ctx, discordID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, discordID, staff)
	return staff, nil
}

// Profile returns a staff file with its direct relations loaded.
func (s *StaffService) Profile(ctx context.Context, id uint) (*domain.StaffFile, error) {
	staff, err := s.repos.Staff.GetProfile(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// History returns a staff file with its tenure and discipline records loaded.
func (s *StaffService) History(ctx context.Context, id uint) (*domain.StaffFile, error) {
	staff, err := s.repos.Staff.GetHistory(ctx, id)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// List returns staff files matching filters.
func (s *StaffService) List(ctx context.Context, filters StaffListFilters) ([]domain.StaffFile, error) {
	staff, err := s.repos.Staff.List(ctx, repository.StaffFilter{
		Name:         filters.Name,
		DepartmentID: filters.DepartmentID,
		TeamID:       filters.TeamID,
		Alumni:       filters.Alumni,
		Limit:        filters.Limit,
		Offset:       filters.Offset,
	})
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return staff, nil
}

// Counts tallies rows across the main entities.
func (s *StaffService) Counts(ctx context.Context) (repository.EntityCounts, error) {
	counts, err := s.repos.Counts(ctx)
	if err != nil {
		return repository.EntityCounts{}, apperrors.MapError(err)
	}
	return counts, nil
}

// IssueStrike records a strike against the staff file linked to the target
// Discord account and publishes EventStrikeIssued. The returned file carries
// the updated strike count.
func (s *StaffService) IssueStrike(ctx context.Context, in StrikeInput) (*domain.StaffFile, *domain.StrikeHistory, error) {
	var (
		staff *domain.StaffFile
		entry *domain.StrikeHistory
	)
	err := s.repos.Transaction(ctx, func(tx *repository.Repositories) error {
		var err error
		staff, err = tx.Staff.GetByDiscordID(ctx, in.TargetDiscordID)
		if err != nil {
			return err
		}
		entry = &domain.StrikeHistory{DisciplineEntry: domain.DisciplineEntry{
			Details:       strings.TrimSpace(in.Details),
			DateGiven:     s.now().UTC(),
			Administrator: in.Issuer.DiscordID,
			EvidenceLink:  in.EvidenceLink,
			StaffFileID:   staff.ID,
		}}
		if err := tx.Discipline.RecordStrike(ctx, entry); err != nil {
			return err
		}
		staff.Strikes++
		return nil
	})
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}

	s.cache.Invalidate(ctx, in.TargetDiscordID)
	if s.dispatcher != nil {
		payload := events.DisciplinePayload{
			StaffName:    staff.Name,
			Details:      entry.Details,
			EvidenceLink: entry.EvidenceLink,
			Total:        staff.Strikes,
		}
		// The strike is already committed; delivery failures are the listeners' concern.
		_ = s.dispatcher.Publish(ctx, events.New(events.EventStrikeIssued, staff.ID, in.Issuer, payload))
	}
	return staff, entry, nil
}
