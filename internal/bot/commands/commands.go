// Package commands holds the built-in slash and text command handlers.
package commands

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/bot"
	"github.com/staffhq/staff-bot/internal/config"
	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/repository"
	"github.com/staffhq/staff-bot/internal/service"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

// StaffDirectory is what the handlers need from the staff service.
type StaffDirectory interface {
	ProfileByDiscordID(ctx context.Context, discordID string) (*domain.StaffFile, error)
	IssueStrike(ctx context.Context, in service.StrikeInput) (*domain.StaffFile, *domain.StrikeHistory, error)
	Counts(ctx context.Context) (repository.EntityCounts, error)
}

// Deps are the collaborators shared by the built-in handlers.
type Deps struct {
	Staff  StaffDirectory
	Bot    config.BotConfig
	Logger *zap.Logger
}

// Slash returns the application command handlers in registration order.
func Slash(deps Deps) []bot.SlashHandler {
	return []bot.SlashHandler{
		&pingSlash{},
		&staffSlash{deps: deps},
		&strikeSlash{deps: deps},
		&staffFileContext{deps: deps},
	}
}

// Prefix returns the text command handlers. deploy publishes the
// definitions of slash.
func Prefix(deps Deps, slash []bot.SlashHandler) []bot.PrefixHandler {
	return []bot.PrefixHandler{
		&pingPrefix{},
		&statsPrefix{deps: deps},
		&deployPrefix{deps: deps, registry: bot.NewRegistry(slash, nil)},
	}
}

// userFacing returns the message to show for expected failures. Anything
// else goes back to the dispatcher as a handler failure.
func userFacing(err error) (string, bool) {
	var de *apperrors.DomainError
	if !errors.As(err, &de) {
		return "", false
	}
	switch de.Code {
	case apperrors.CodeNotFound:
		return "No staff file is linked to that user.", true
	case apperrors.CodeValidation:
		return "That input was rejected: " + de.Message + ".", true
	default:
		return "", false
	}
}
