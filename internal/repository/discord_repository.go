package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/staffhq/staff-bot/internal/domain"
)

// DiscordRepository handles persistence for Discord identity links.
type DiscordRepository interface {
	Store[domain.DiscordInformation]
	GetByDiscordID(ctx context.Context, discordID string) (*domain.DiscordInformation, error)
	Link(ctx context.Context, staffID uint, username, discordID string) (*domain.DiscordInformation, error)
}

type discordRepository struct {
	crud[domain.DiscordInformation]
}

// NewDiscordRepository instantiates the repository.
func NewDiscordRepository(db *gorm.DB) DiscordRepository {
	return &discordRepository{crud[domain.DiscordInformation]{db: db, resource: "discord information"}}
}

func (r *discordRepository) GetByDiscordID(ctx context.Context, discordID string) (*domain.DiscordInformation, error) {
	var info domain.DiscordInformation
	if err := r.db.WithContext(ctx).Where("discord_id = ?", discordID).First(&info).Error; err != nil {
		return nil, r.notFound(err, "discord_id", discordID)
	}
	return &info, nil
}

// Link attaches a Discord account to a staff file.
func (r *discordRepository) Link(ctx context.Context, staffID uint, username, discordID string) (*domain.DiscordInformation, error) {
	info := &domain.DiscordInformation{
		Username:    username,
		DiscordID:   discordID,
		StaffFileID: &staffID,
	}
	if err := r.db.WithContext(ctx).Create(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
