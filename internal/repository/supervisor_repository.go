package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
)

// SupervisorRepository handles persistence for supervisory roles.
type SupervisorRepository interface {
	Store[domain.Supervisor]
	Holder(ctx context.Context, id uint) (*domain.StaffFile, error)
	Departments(ctx context.Context, id uint) ([]domain.Department, error)
	Teams(ctx context.Context, id uint) ([]domain.Team, error)
}

type supervisorRepository struct {
	crud[domain.Supervisor]
}

// NewSupervisorRepository instantiates the repository.
func NewSupervisorRepository(db *gorm.DB) SupervisorRepository {
	return &supervisorRepository{crud[domain.Supervisor]{db: db, resource: "supervisor"}}
}

// Holder returns the staff file occupying the supervisory role.
func (r *supervisorRepository) Holder(ctx context.Context, id uint) (*domain.StaffFile, error) {
	var staff domain.StaffFile
	if err := r.db.WithContext(ctx).Where("supervisor_id = ?", id).First(&staff).Error; err != nil {
		return nil, r.notFound(err, "supervisor_id", id)
	}
	return &staff, nil
}

func (r *supervisorRepository) Departments(ctx context.Context, id uint) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).Where("supervisor_id = ?", id).Order("name ASC").Find(&depts).Error
	return depts, err
}

func (r *supervisorRepository) Teams(ctx context.Context, id uint) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).
		Joins("JOIN team_supervisors ON team_supervisors.team_id = teams.id").
		Where("team_supervisors.supervisor_id = ?", id).
		Order("teams.name ASC").
		Find(&teams).Error
	return teams, err
}
