package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
)

// TeamRepository handles persistence for teams.
type TeamRepository interface {
	Store[domain.Team]
	ListByDepartment(ctx context.Context, departmentID uint) ([]domain.Team, error)
	Members(ctx context.Context, id uint) ([]domain.StaffFile, error)
	Supervisors(ctx context.Context, id uint) ([]domain.Supervisor, error)
	AddSupervisor(ctx context.Context, teamID, supervisorID uint) error
	RemoveSupervisor(ctx context.Context, teamID, supervisorID uint) error
}

type teamRepository struct {
	crud[domain.Team]
}

// NewTeamRepository instantiates the repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{crud[domain.Team]{db: db, resource: "team"}}
}

func (r *teamRepository) ListByDepartment(ctx context.Context, departmentID uint) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).Where("department_id = ?", departmentID).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *teamRepository) Members(ctx context.Context, id uint) ([]domain.StaffFile, error) {
	var staff []domain.StaffFile
	err := r.db.WithContext(ctx).Where("team_id = ?", id).Order("name ASC").Find(&staff).Error
	return staff, err
}

func (r *teamRepository) Supervisors(ctx context.Context, id uint) ([]domain.Supervisor, error) {
	var sups []domain.Supervisor
	err := r.db.WithContext(ctx).
		Joins("JOIN team_supervisors ON team_supervisors.supervisor_id = supervisors.id").
		Where("team_supervisors.team_id = ?", id).
		Order("supervisors.id ASC").
		Find(&sups).Error
	return sups, err
}

func (r *teamRepository) AddSupervisor(ctx context.Context, teamID, supervisorID uint) error {
	link := domain.TeamSupervisor{TeamID: teamID, SupervisorID: supervisorID}
	err := r.db.WithContext(ctx).Create(&link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *teamRepository) RemoveSupervisor(ctx context.Context, teamID, supervisorID uint) error {
	return r.db.WithContext(ctx).
		Where("team_id = ? AND supervisor_id = ?", teamID, supervisorID).
		Delete(&domain.TeamSupervisor{}).Error
}
