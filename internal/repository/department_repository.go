package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
)

// DepartmentRepository handles persistence for departments.
type DepartmentRepository interface {
	Store[domain.Department]
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Teams(ctx context.Context, id uint) ([]domain.Team, error)
	Staff(ctx context.Context, id uint) ([]domain.StaffFile, error)
	Positions(ctx context.Context, id uint) ([]domain.Position, error)
	PositionHistory(ctx context.Context, id uint) ([]domain.PositionHistory, error)
}

type departmentRepository struct {
	crud[domain.Department]
}

// NewDepartmentRepository instantiates the repository.
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{crud[domain.Department]{db: db, resource: "department"}}
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	var dept domain.Department
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&dept).Error; err != nil {
		return nil, r.notFound(err, "name", name)
	}
	return &dept, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).Preload("Supervisor").Order("name ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) Teams(ctx context.Context, id uint) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).Where("department_id = ?", id).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *departmentRepository) Staff(ctx context.Context, id uint) ([]domain.StaffFile, error) {
	var staff []domain.StaffFile
	err := r.db.WithContext(ctx).Where("department_id = ?", id).Order("name ASC").Find(&staff).Error
	return staff, err
}

func (r *departmentRepository) Positions(ctx context.Context, id uint) ([]domain.Position, error) {
	var positions []domain.Position
	err := r.db.WithContext(ctx).Where("department_id = ?", id).Order("title ASC").Find(&positions).Error
	return positions, err
}

func (r *departmentRepository) PositionHistory(ctx context.Context, id uint) ([]domain.PositionHistory, error) {
	var entries []domain.PositionHistory
	err := r.db.WithContext(ctx).Where("department_id = ?", id).Order("joined DESC").Find(&entries).Error
	return entries, err
}
