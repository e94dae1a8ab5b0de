package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/bot"
)

type pingPrefix struct{}

func (pingPrefix) Name() string      { return "ping" }
func (pingPrefix) Aliases() []string { return []string{"p"} }

func (pingPrefix) Execute(_ context.Context, msg *bot.Message, _ []string) error {
	return msg.Reply(fmt.Sprintf("Pong! Gateway latency: %s", msg.Session.HeartbeatLatency().Round(time.Millisecond)))
}

type statsPrefix struct {
	deps Deps
}

func (statsPrefix) Name() string      { return "stats" }
func (statsPrefix) Aliases() []string { return []string{"count"} }

func (c *statsPrefix) Execute(ctx context.Context, msg *bot.Message, _ []string) error {
	counts, err := c.deps.Staff.Counts(ctx)
	if err != nil {
		return err
	}
	var b strings.Builder
	b.WriteString("```\n")
	fmt.Fprintf(&b, "staff files   %d\n", counts.StaffFiles)
	fmt.Fprintf(&b, "departments   %d\n", counts.Departments)
	fmt.Fprintf(&b, "teams         %d\n", counts.Teams)
	fmt.Fprintf(&b, "supervisors   %d\n", counts.Supervisors)
	fmt.Fprintf(&b, "positions     %d\n", counts.Positions)
	fmt.Fprintf(&b, "discord links %d\n", counts.Discord)
	fmt.Fprintf(&b, "tickets       %d\n", counts.Tickets)
	b.WriteString("```")
	return msg.Reply(b.String())
}

// deployPrefix publishes the slash command definitions. "deploy guild"
// targets the configured guild instead of the whole application.
type deployPrefix struct {
	deps     Deps
	registry *bot.Registry
}

func (deployPrefix) Name() string      { return "deploy" }
func (deployPrefix) Aliases() []string { return []string{"sync"} }

func (c *deployPrefix) Execute(ctx context.Context, msg *bot.Message, args []string) error {
	// Deploy is developer-only whatever the dispatcher's enforcement mode.
	ok, err := bot.NewStaticDevList(c.deps.Bot.DeveloperIDs).IsDeveloper(ctx, msg.Event.Author)
	if err != nil {
		return fmt.Errorf("check developer: %w", err)
	}
	if !ok {
		if c.deps.Logger != nil && msg.Event.Author != nil {
			c.deps.Logger.Warn("refused command deploy",
				zap.String("user_id", msg.Event.Author.ID))
		}
		return msg.Reply("Only bot developers can deploy commands.")
	}

	appID := c.deps.Bot.ApplicationID
	if appID == "" {
		return msg.Reply("DISCORD_APPLICATION_ID is not configured.")
	}
	guildID := ""
	if len(args) > 0 && strings.EqualFold(args[0], "guild") {
		if c.deps.Bot.GuildID == "" {
			return msg.Reply("DISCORD_GUILD_ID is not configured.")
		}
		guildID = c.deps.Bot.GuildID
	}

	defs := c.registry.SlashDefinitions()
	published, err := msg.Session.ApplicationCommandBulkOverwrite(appID, guildID, defs)
	if err != nil {
		return fmt.Errorf("bulk overwrite commands: %w", err)
	}
	if c.deps.Logger != nil {
		c.deps.Logger.Info("published application commands",
			zap.Int("count", len(published)), zap.String("guild_id", guildID))
	}
	scope := "globally"
	if guildID != "" {
		scope = "to the guild"
	}
	return msg.Reply(fmt.Sprintf("Published %d command(s) %s.", len(published), scope))
}
