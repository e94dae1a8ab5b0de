package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
)

// DisciplineRepository records strikes, censures, PIPs and breaks against a
// staff file. Each Record* call writes the history row and bumps the matching
// counter on the staff file in one transaction.
type DisciplineRepository interface {
	RecordStrike(ctx context.Context, entry *domain.StrikeHistory) error
	RecordCensure(ctx context.Context, entry *domain.CensureHistory) error
	RecordPIP(ctx context.Context, entry *domain.PIPHistory) error
	RecordBreak(ctx context.Context, entry *domain.BreakRecord) error
	Strikes(ctx context.Context, staffID uint) ([]domain.StrikeHistory, error)
	Censures(ctx context.Context, staffID uint) ([]domain.CensureHistory, error)
	PIPs(ctx context.Context, staffID uint) ([]domain.PIPHistory, error)
	Breaks(ctx context.Context, staffID uint) ([]domain.BreakRecord, error)
}

type disciplineRepository struct {
	db *gorm.DB
}

// NewDisciplineRepository instantiates the repository.
func NewDisciplineRepository(db *gorm.DB) DisciplineRepository {
	return &disciplineRepository{db: db}
}

func (r *disciplineRepository) RecordStrike(ctx context.Context, entry *domain.StrikeHistory) error {
	return r.record(ctx, entry, entry.StaffFileID, "strikes")
}

func (r *disciplineRepository) RecordCensure(ctx context.Context, entry *domain.CensureHistory) error {
	return r.record(ctx, entry, entry.StaffFileID, "censures")
}

func (r *disciplineRepository) RecordPIP(ctx context.Context, entry *domain.PIPHistory) error {
	return r.record(ctx, entry, entry.StaffFileID, "pips")
}

func (r *disciplineRepository) RecordBreak(ctx context.Context, entry *domain.BreakRecord) error {
	return r.record(ctx, entry, entry.StaffFileID, "")
}

func (r *disciplineRepository) record(ctx context.Context, entry any, staffID uint, counter string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var staff domain.StaffFile
		if err := tx.Select("id").First(&staff, staffID).Error; err != nil {
			return crud[domain.StaffFile]{resource: "staff file"}.notFound(err, "id", staffID)
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if counter == "" {
			return nil
		}
		return tx.Model(&staff).UpdateColumn(counter, gorm.Expr(counter+" + ?", 1)).Error
	})
}

func (r *disciplineRepository) Strikes(ctx context.Context, staffID uint) ([]domain.StrikeHistory, error) {
	var entries []domain.StrikeHistory
	err := r.db.WithContext(ctx).Where("staff_file_id = ?", staffID).Order("date_given DESC").Find(&entries).Error
	return entries, err
}

func (r *disciplineRepository) Censures(ctx context.Context, staffID uint) ([]domain.CensureHistory, error) {
	var entries []domain.CensureHistory
	err := r.db.WithContext(ctx).Where("staff_file_id = ?", staffID).Order("date_given DESC").Find(&entries).Error
	return entries, err
}

func (r *disciplineRepository) PIPs(ctx context.Context, staffID uint) ([]domain.PIPHistory, error) {
	var entries []domain.PIPHistory
	err := r.db.WithContext(ctx).Where("staff_file_id = ?", staffID).Order("date_given DESC").Find(&entries).Error
	return entries, err
}

func (r *disciplineRepository) Breaks(ctx context.Context, staffID uint) ([]domain.BreakRecord, error) {
	var entries []domain.BreakRecord
	err := r.db.WithContext(ctx).Where("staff_file_id = ?", staffID).Order("date_from DESC").Find(&entries).Error
	return entries, err
}
