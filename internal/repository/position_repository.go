package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
)

// PositionRepository handles persistence for positions and tenures.
type PositionRepository interface {
	Store[domain.Position]
	GetByTitle(ctx context.Context, title string) (*domain.Position, error)
	List(ctx context.Context) ([]domain.Position, error)
	Holders(ctx context.Context, id uint) ([]domain.StaffFile, error)
	RecordTenure(ctx context.Context, entry *domain.PositionHistory) error
	History(ctx context.Context, id uint) ([]domain.PositionHistory, error)
}

type positionRepository struct {
	crud[domain.Position]
}

// NewPositionRepository instantiates the repository.
func NewPositionRepository(db *gorm.DB) PositionRepository {
	return &positionRepository{crud[domain.Position]{db: db, resource: "position"}}
}

func (r *positionRepository) GetByTitle(ctx context.Context, title string) (*domain.Position, error) {
	var pos domain.Position
	if err := r.db.WithContext(ctx).Where("title = ?", title).First(&pos).Error; err != nil {
		return nil, r.notFound(err, "title", title)
	}
	return &pos, nil
}

func (r *positionRepository) List(ctx context.Context) ([]domain.Position, error) {
	var positions []domain.Position
	err := r.db.WithContext(ctx).Preload("Department").Order("title ASC").Find(&positions).Error
	return positions, err
}

func (r *positionRepository) Holders(ctx context.Context, id uint) ([]domain.StaffFile, error) {
	var staff []domain.StaffFile
	err := r.db.WithContext(ctx).
		Joins("JOIN position_staff ON position_staff.staff_file_id = staff_files.id").
		Where("position_staff.position_id = ?", id).
		Order("staff_files.name ASC").
		Find(&staff).Error
	return staff, err
}

func (r *positionRepository) RecordTenure(ctx context.Context, entry *domain.PositionHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *positionRepository) History(ctx context.Context, id uint) ([]domain.PositionHistory, error) {
	var entries []domain.PositionHistory
	err := r.db.WithContext(ctx).Where("position_id = ?", id).Order("joined DESC").Find(&entries).Error
	return entries, err
}
