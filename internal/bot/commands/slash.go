package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/staffhq/staff-bot/internal/bot"
	"github.com/staffhq/staff-bot/internal/events"
	"github.com/staffhq/staff-bot/internal/service"
)

type pingSlash struct{}

func (pingSlash) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check that the bot is alive",
	}
}

func (pingSlash) Execute(_ context.Context, in *bot.Interaction) error {
	return in.Reply(fmt.Sprintf("Pong! Gateway latency: %s", in.Session.HeartbeatLatency().Round(time.Millisecond)))
}

type staffSlash struct {
	deps Deps
}

func (staffSlash) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        "staff",
		Description: "Show the staff file linked to a user",
		Options: []*discordgo.ApplicationCommandOption{{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "user",
			Description: "Staff member",
			Required:    true,
		}},
	}
}

func (c *staffSlash) Execute(ctx context.Context, in *bot.Interaction) error {
	target := in.UserOption("user")
	if target == nil {
		return in.ReplyEphemeral("Pick a user to look up.")
	}
	staff, err := c.deps.Staff.ProfileByDiscordID(ctx, target.ID)
	if err != nil {
		if msg, ok := userFacing(err); ok {
			return in.ReplyEphemeral(msg)
		}
		return err
	}
	return in.ReplyEmbed(staffEmbed(staff))
}

var moderateMembers int64 = discordgo.PermissionModerateMembers

type strikeSlash struct {
	deps Deps
}

func (strikeSlash) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:                     "strike",
		Description:              "Issue a strike to a staff member",
		DefaultMemberPermissions: &moderateMembers,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Staff member receiving the strike",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "details",
				Description: "What happened",
				Required:    true,
				MaxLength:   1024,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "evidence",
				Description: "Link to evidence",
			},
		},
	}
}

func (c *strikeSlash) Execute(ctx context.Context, in *bot.Interaction) error {
	target := in.UserOption("user")
	details, _ := in.StringOption("details")
	if target == nil || strings.TrimSpace(details) == "" {
		return in.ReplyEphemeral("A user and details are required.")
	}

	issuer := in.User()
	input := service.StrikeInput{
		TargetDiscordID: target.ID,
		Details:         details,
		Issuer:          events.Actor{DiscordID: issuer.ID, Username: issuer.String()},
	}
	if evidence, ok := in.StringOption("evidence"); ok && strings.TrimSpace(evidence) != "" {
		evidence = strings.TrimSpace(evidence)
		input.EvidenceLink = &evidence
	}

	staff, _, err := c.deps.Staff.IssueStrike(ctx, input)
	if err != nil {
		if msg, ok := userFacing(err); ok {
			return in.ReplyEphemeral(msg)
		}
		return err
	}
	return in.Reply(fmt.Sprintf("Strike recorded for %s. They now have %d strike(s).", staff.Name, staff.Strikes))
}

type staffFileContext struct {
	deps Deps
}

func (staffFileContext) Definition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name: "Staff File",
		Type: discordgo.MessageApplicationCommand,
	}
}

func (c *staffFileContext) Execute(ctx context.Context, in *bot.Interaction) error {
	msg := in.TargetMessage()
	if msg == nil || msg.Author == nil {
		return in.ReplyEphemeral("Could not resolve that message's author.")
	}
	staff, err := c.deps.Staff.ProfileByDiscordID(ctx, msg.Author.ID)
	if err != nil {
		if text, ok := userFacing(err); ok {
			return in.ReplyEphemeral(text)
		}
		return err
	}
	return in.ReplyEmbed(staffEmbed(staff))
}
