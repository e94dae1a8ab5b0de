package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffhq/staff-bot/internal/bot"
	"github.com/staffhq/staff-bot/internal/config"
	"github.com/staffhq/staff-bot/internal/domain"
	"github.com/staffhq/staff-bot/internal/repository"
	"github.com/staffhq/staff-bot/internal/service"
	apperrors "github.com/staffhq/staff-bot/pkg/util/errorutil"
)

type fakeDirectory struct {
	files   map[string]*domain.StaffFile
	strikes []service.StrikeInput
	fail    error
}

func (f *fakeDirectory) ProfileByDiscordID(_ context.Context, id string) (*domain.StaffFile, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	staff, ok := f.files[id]
	if !ok {
		return nil, apperrors.NewNotFound("staff file", map[string]any{"discord_id": id})
	}
	return staff, nil
}

func (f *fakeDirectory) IssueStrike(_ context.Context, in service.StrikeInput) (*domain.StaffFile, *domain.StrikeHistory, error) {
	staff, ok := f.files[in.TargetDiscordID]
	if !ok {
		return nil, nil, apperrors.NewNotFound("staff file", nil)
	}
	f.strikes = append(f.strikes, in)
	staff.Strikes++
	return staff, &domain.StrikeHistory{}, nil
}

func (f *fakeDirectory) Counts(context.Context) (repository.EntityCounts, error) {
	if f.fail != nil {
		return repository.EntityCounts{}, f.fail
	}
	return repository.EntityCounts{StaffFiles: 3, Departments: 1}, nil
}

type fakeSession struct {
	responses   []*discordgo.InteractionResponse
	replies     []string
	embeds      []*discordgo.MessageEmbed
	overwritten []*discordgo.ApplicationCommand
	guildID     string
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{Content: data.Content}, nil
}

func (f *fakeSession) ChannelMessageSend(_, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	return &discordgo.Message{Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendReply(_, content string, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.replies = append(f.replies, content)
	return &discordgo.Message{Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendEmbedReply(_ string, embed *discordgo.MessageEmbed, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.embeds = append(f.embeds, embed)
	return &discordgo.Message{}, nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(_, guildID string, cmds []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.overwritten = cmds
	f.guildID = guildID
	return cmds, nil
}

func (f *fakeSession) HeartbeatLatency() time.Duration { return 87 * time.Millisecond }

const (
	modID    = "100000000000000001"
	targetID = "100000000000000002"
)

func newDirectory() *fakeDirectory {
	dept := &domain.Department{Name: "Support"}
	return &fakeDirectory{files: map[string]*domain.StaffFile{
		targetID: {ID: 1, Name: "Ada", Department: dept, Positions: []domain.Position{{Title: "Moderator"}}},
	}}
}

func interaction(s *fakeSession, data discordgo.ApplicationCommandInteractionData) *bot.Interaction {
	return bot.NewInteraction(s, &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:   discordgo.InteractionApplicationCommand,
		Member: &discordgo.Member{User: &discordgo.User{ID: modID, Username: "mod"}},
		Data:   data,
	}})
}

func message(s *fakeSession, content string) *bot.Message {
	return &bot.Message{Session: s, Event: &discordgo.MessageCreate{Message: &discordgo.Message{
		ID: "1", ChannelID: "2", Content: content, Author: &discordgo.User{ID: modID},
	}}}
}

func findSlash(t *testing.T, deps Deps, name string) bot.SlashHandler {
	t.Helper()
	h, ok := bot.NewRegistry(Slash(deps), nil).Slash(name)
	require.True(t, ok, name)
	return h
}

func TestStaffCommandShowsEmbed(t *testing.T) {
	deps := Deps{Staff: newDirectory()}
	s := &fakeSession{}
	in := interaction(s, discordgo.ApplicationCommandInteractionData{
		Name: "staff",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: targetID},
		},
	})

	require.NoError(t, findSlash(t, deps, "staff").Execute(context.Background(), in))
	require.Len(t, s.responses, 1)
	embeds := s.responses[0].Data.Embeds
	require.Len(t, embeds, 1)
	assert.Equal(t, "Ada", embeds[0].Title)

	var names []string
	for _, f := range embeds[0].Fields {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Department")
	assert.Contains(t, names, "Positions")
}

func TestStaffCommandUnknownUserIsEphemeral(t *testing.T) {
	deps := Deps{Staff: newDirectory()}
	s := &fakeSession{}
	in := interaction(s, discordgo.ApplicationCommandInteractionData{
		Name: "staff",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: "100000000000000099"},
		},
	})

	require.NoError(t, findSlash(t, deps, "staff").Execute(context.Background(), in))
	require.Len(t, s.responses, 1)
	assert.Equal(t, discordgo.MessageFlagsEphemeral, s.responses[0].Data.Flags)
}

func TestStaffCommandPropagatesUnexpectedErrors(t *testing.T) {
	dir := newDirectory()
	dir.fail = errors.New("connection reset")
	s := &fakeSession{}
	in := interaction(s, discordgo.ApplicationCommandInteractionData{
		Name: "staff",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: targetID},
		},
	})

	err := findSlash(t, Deps{Staff: dir}, "staff").Execute(context.Background(), in)
	assert.EqualError(t, err, "connection reset")
	assert.Empty(t, s.responses)
}

func TestStrikeCommand(t *testing.T) {
	dir := newDirectory()
	s := &fakeSession{}
	in := interaction(s, discordgo.ApplicationCommandInteractionData{
		Name: "strike",
		Options: []*discordgo.ApplicationCommandInteractionDataOption{
			{Name: "user", Type: discordgo.ApplicationCommandOptionUser, Value: targetID},
			{Name: "details", Type: discordgo.ApplicationCommandOptionString, Value: "no-show"},
			{Name: "evidence", Type: discordgo.ApplicationCommandOptionString, Value: " https://example.com/log "},
		},
	})

	require.NoError(t, findSlash(t, Deps{Staff: dir}, "strike").Execute(context.Background(), in))
	require.Len(t, dir.strikes, 1)
	assert.Equal(t, modID, dir.strikes[0].Issuer.DiscordID)
	require.NotNil(t, dir.strikes[0].EvidenceLink)
	assert.Equal(t, "https://example.com/log", *dir.strikes[0].EvidenceLink)
	require.Len(t, s.responses, 1)
	assert.Equal(t, "Strike recorded for Ada. They now have 1 strike(s).", s.responses[0].Data.Content)

	def := findSlash(t, Deps{Staff: dir}, "strike").Definition()
	require.NotNil(t, def.DefaultMemberPermissions)
	assert.EqualValues(t, discordgo.PermissionModerateMembers, *def.DefaultMemberPermissions)
}

func TestStaffFileContextMenu(t *testing.T) {
	deps := Deps{Staff: newDirectory()}
	s := &fakeSession{}
	in := interaction(s, discordgo.ApplicationCommandInteractionData{
		Name:        "Staff File",
		CommandType: discordgo.MessageApplicationCommand,
		TargetID:    "900",
		Resolved: &discordgo.ApplicationCommandInteractionDataResolved{
			Messages: map[string]*discordgo.Message{"900": {ID: "900", Author: &discordgo.User{ID: targetID}}},
		},
	})

	h := findSlash(t, deps, "Staff File")
	assert.Equal(t, discordgo.MessageApplicationCommand, h.Definition().Type)
	require.NoError(t, h.Execute(context.Background(), in))
	require.Len(t, s.responses, 1)
	require.Len(t, s.responses[0].Data.Embeds, 1)
	assert.Equal(t, "Ada", s.responses[0].Data.Embeds[0].Title)
}

func TestPrefixCommands(t *testing.T) {
	deps := Deps{Staff: newDirectory(), Bot: config.BotConfig{ApplicationID: "app", GuildID: "guild", DeveloperIDs: []string{modID}}}
	slash := Slash(deps)
	r := bot.NewRegistry(slash, Prefix(deps, slash))
	ctx := context.Background()

	ping, ok := r.Prefix("p")
	require.True(t, ok)
	s := &fakeSession{}
	require.NoError(t, ping.Execute(ctx, message(s, "!p"), nil))
	assert.Equal(t, []string{"Pong! Gateway latency: 87ms"}, s.replies)

	stats, ok := r.Prefix("count")
	require.True(t, ok)
	s = &fakeSession{}
	require.NoError(t, stats.Execute(ctx, message(s, "!count"), nil))
	require.Len(t, s.replies, 1)
	assert.Contains(t, s.replies[0], "staff files   3")

	deploy, ok := r.Prefix("sync")
	require.True(t, ok)
	s = &fakeSession{}
	require.NoError(t, deploy.Execute(ctx, message(s, "!sync"), nil))
	assert.Len(t, s.overwritten, len(slash))
	assert.Empty(t, s.guildID)
	assert.Equal(t, []string{"Published 4 command(s) globally."}, s.replies)

	s = &fakeSession{}
	require.NoError(t, deploy.Execute(ctx, message(s, "!sync guild"), []string{"guild"}))
	assert.Equal(t, "guild", s.guildID)
}

func TestDeployRefusesNonDevelopers(t *testing.T) {
	deps := Deps{Staff: newDirectory(), Bot: config.BotConfig{ApplicationID: "app", DeveloperIDs: []string{"100000000000000042"}}}
	h, ok := bot.NewRegistry(nil, Prefix(deps, Slash(deps))).Prefix("deploy")
	require.True(t, ok)
	s := &fakeSession{}
	require.NoError(t, h.Execute(context.Background(), message(s, "!deploy"), nil))
	assert.Nil(t, s.overwritten)
	assert.Equal(t, []string{"Only bot developers can deploy commands."}, s.replies)
}

func TestDeployWithoutApplicationID(t *testing.T) {
	deps := Deps{Staff: newDirectory(), Bot: config.BotConfig{DeveloperIDs: []string{modID}}}
	h, ok := bot.NewRegistry(nil, Prefix(deps, Slash(deps))).Prefix("deploy")
	require.True(t, ok)
	s := &fakeSession{}
	require.NoError(t, h.Execute(context.Background(), message(s, "!deploy"), nil))
	assert.Nil(t, s.overwritten)
	assert.Equal(t, []string{"DISCORD_APPLICATION_ID is not configured."}, s.replies)
}
