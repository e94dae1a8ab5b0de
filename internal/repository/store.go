package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// Store is the create/read/update/delete handle every entity repository exposes.
type Store[T any] interface {
	Create(ctx context.Context, record *T) error
	GetByID(ctx context.Context, id uint) (*T, error)
	Update(ctx context.Context, record *T) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type crud[T any] struct {
	db       *gorm.DB
	resource string
}

func (c crud[T]) Create(ctx context.Context, record *T) error {
	return c.db.WithContext(ctx).Create(record).Error
}

func (c crud[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var record T
	if err := c.db.WithContext(ctx).First(&record, id).Error; err != nil {
		return nil, c.notFound(err, "id", id)
	}
	return &record, nil
}

func (c crud[T]) Update(ctx context.Context, record *T) error {
	return c.db.WithContext(ctx).Omit(clause.Associations).Save(record).Error
}

func (c crud[T]) Delete(ctx context.Context, id uint) error {
	var record T
	result := c.db.WithContext(ctx).Delete(&record, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFound(c.resource, map[string]any{"id": id})
	}
	return nil
}

func (c crud[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(new(T)).Count(&count).Error
	return count, err
}

func (c crud[T]) notFound(err error, key string, value any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewNotFound(c.resource, map[string]any{key: value})
	}
	return err
}

