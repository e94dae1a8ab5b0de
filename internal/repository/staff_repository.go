package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// StaffRepository handles persistence for staff files and their relations.
type StaffRepository interface {
	Store[domain.StaffFile]
	GetByName(ctx context.Context, name string) (*domain.StaffFile, error)
	GetByDiscordID(ctx context.Context, discordID string) (*domain.StaffFile, error)
	GetProfile(ctx context.Context, id uint) (*domain.StaffFile, error)
	GetHistory(ctx context.Context, id uint) (*domain.StaffFile, error)
	List(ctx context.Context, filter StaffFilter) ([]domain.StaffFile, error)
	Positions(ctx context.Context, id uint) ([]domain.Position, error)
	AssignPosition(ctx context.Context, staffID, positionID uint) error
	RemovePosition(ctx context.Context, staffID, positionID uint) error
}

// StaffFilter defines query params for staff listing.
type StaffFilter struct {
	Name         string
	DepartmentID *uint
	TeamID       *uint
	Alumni       *bool
	Limit        int
	Offset       int
}

type staffRepository struct {
	crud[domain.StaffFile]
}

// NewStaffRepository instantiates the repository.
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{crud[domain.StaffFile]{db: db, resource: "staff file"}}
}

func (r *staffRepository) GetByName(ctx context.Context, name string) (*domain.StaffFile, error) {
	var staff domain.StaffFile
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&staff).Error; err != nil {
		return nil, r.notFound(err, "name", name)
	}
	return &staff, nil
}

func (r *staffRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.StaffFile, error) {
	var info domain.DiscordInformation
	err := r.db.WithContext(ctx).Where("discord_id = ?", discordID).First(&info).Error
	if err != nil {
		return nil, r.notFound(err, "discord_id", discordID)
	}
	if info.StaffFileID == nil {
		return nil, apperrors.NewNotFound(r.resource, map[string]any{"discord_id": discordID})
	}
	return r.GetProfile(ctx, *info.StaffFileID)
}

func (r *staffRepository) GetProfile(ctx context.Context, id uint) (*domain.StaffFile, error) {
	var staff domain.StaffFile
	err := r.db.WithContext(ctx).
		Preload("Team").
		Preload("Department").
		Preload("Supervisor").
		Preload("DiscordInformation").
		Preload("Positions", func(db *gorm.DB) *gorm.DB { return db.Order("positions.title ASC") }).
		First(&staff, id).Error
	if err != nil {
		return nil, r.notFound(err, "id", id)
	}
	return &staff, nil
}

func (r *staffRepository) GetHistory(ctx context.Context, id uint) (*domain.StaffFile, error) {
	byDate := func(column string) func(*gorm.DB) *gorm.DB {
		return func(db *gorm.DB) *gorm.DB { return db.Order(column + " DESC") }
	}
	var staff domain.StaffFile
	err := r.db.WithContext(ctx).
		Preload("PositionHistories", byDate("joined")).
		Preload("StrikeHistory", byDate("date_given")).
		Preload("CensureHistory", byDate("date_given")).
		Preload("PIPHistory", byDate("date_given")).
		Preload("BreakRecords", byDate("date_from")).
		First(&staff, id).Error
	if err != nil {
		return nil, r.notFound(err, "id", id)
	}
	return &staff, nil
}

func (r *staffRepository) List(ctx context.Context, filter StaffFilter) ([]domain.StaffFile, error) {
	query := r.db.WithContext(ctx).Model(&domain.StaffFile{})

	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.TeamID != nil {
		query = query.Where("team_id = ?", *filter.TeamID)
	}
	if filter.Alumni != nil {
		query = query.Where("alumni = ?", *filter.Alumni)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var result []domain.StaffFile
	err := query.Order("name ASC").Limit(limit).Offset(offset).Find(&result).Error
	return result, err
}

func (r *staffRepository) Positions(ctx context.Context, id uint) ([]domain.Position, error) {
	var positions []domain.Position
	err := r.db.WithContext(ctx).
		Joins("JOIN position_staff ON position_staff.position_id = positions.id").
		Where("position_staff.staff_file_id = ?", id).
		Order("positions.title ASC").
		Find(&positions).Error
	return positions, err
}

func (r *staffRepository) AssignPosition(ctx context.Context, staffID, positionID uint) error {
	link := domain.PositionStaff{StaffFileID: staffID, PositionID: positionID}
	err := r.db.WithContext(ctx).Create(&link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

func (r *staffRepository) RemovePosition(ctx context.Context, staffID, positionID uint) error {
	return r.db.WithContext(ctx).
		Where("staff_file_id = ? AND position_id = ?", staffID, positionID).
		Delete(&domain.PositionStaff{}).Error
}
