package bot

import (
	"errors"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
)

type sentReply struct {
	channelID string
	content   string
	embed     *discordgo.MessageEmbed
}

// fakeSession records outbound calls instead of talking to Discord.
type fakeSession struct {
	mu          sync.Mutex
	responses   []*discordgo.InteractionResponse
	followups   []*discordgo.WebhookParams
	replies     []sentReply
	sent        []sentReply
	overwritten []*discordgo.ApplicationCommand

	// rejectResponds fails that many leading InteractionRespond calls.
	rejectResponds int
	respondCalls   int
}

func (f *fakeSession) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.respondCalls++
	if f.respondCalls <= f.rejectResponds {
		return errors.New("HTTP 400 Bad Request: invalid form body")
	}
	f.responses = append(f.responses, resp)
	return nil
}

func (f *fakeSession) FollowupMessageCreate(_ *discordgo.Interaction, _ bool, data *discordgo.WebhookParams, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.followups = append(f.followups, data)
	return &discordgo.Message{Content: data.Content}, nil
}

func (f *fakeSession) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentReply{channelID: channelID, content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendReply(channelID, content string, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, sentReply{channelID: channelID, content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (f *fakeSession) ChannelMessageSendEmbedReply(channelID string, embed *discordgo.MessageEmbed, _ *discordgo.MessageReference, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies = append(f.replies, sentReply{channelID: channelID, embed: embed})
	return &discordgo.Message{ChannelID: channelID}, nil
}

func (f *fakeSession) ApplicationCommandBulkOverwrite(_, _ string, commands []*discordgo.ApplicationCommand, _ ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overwritten = commands
	return commands, nil
}

func (f *fakeSession) HeartbeatLatency() time.Duration {
	return 42 * time.Millisecond
}
