package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles one typed handle per entity, all sharing one store
// connection. It is built once at startup and passed to whoever needs it.
type Repositories struct {
	Staff       StaffRepository
	Departments DepartmentRepository
	Teams       TeamRepository
	Supervisors SupervisorRepository
	Positions   PositionRepository
	Discord     DiscordRepository
	Discipline  DisciplineRepository
	Tickets     TicketRepository

	db *gorm.DB
}

// New builds the repository set over db.
func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Staff:       NewStaffRepository(db),
		Departments: NewDepartmentRepository(db),
		Teams:       NewTeamRepository(db),
		Supervisors: NewSupervisorRepository(db),
		Positions:   NewPositionRepository(db),
		Discord:     NewDiscordRepository(db),
		Discipline:  NewDisciplineRepository(db),
		Tickets:     NewTicketRepository(db),
		db:          db,
	}
}

// Transaction runs fn against a repository set bound to a single transaction.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// EntityCounts is the number of rows per entity.
type EntityCounts struct {
	StaffFiles  int64 `json:"staff_files"`
	Departments int64 `json:"departments"`
	Teams       int64 `json:"teams"`
	Supervisors int64 `json:"supervisors"`
	Positions   int64 `json:"positions"`
	Discord     int64 `json:"discord_links"`
	Tickets     int64 `json:"tickets"`
}

// Counts tallies rows across the main entities.
func (r *Repositories) Counts(ctx context.Context) (EntityCounts, error) {
	var counts EntityCounts
	steps := []struct {
		dst   *int64
		count func(context.Context) (int64, error)
	}{
		{&counts.StaffFiles, r.Staff.Count},
		{&counts.Departments, r.Departments.Count},
		{&counts.Teams, r.Teams.Count},
		{&counts.Supervisors, r.Supervisors.Count},
		{&counts.Positions, r.Positions.Count},
		{&counts.Discord, r.Discord.Count},
		{&counts.Tickets, r.Tickets.Count},
	}
	for _, step := range steps {
		n, err := step.count(ctx)
		if err != nil {
			return EntityCounts{}, err
		}
		*step.dst = n
	}
	return counts, nil
}
