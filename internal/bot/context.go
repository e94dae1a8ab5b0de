package bot

import (
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

// Interaction is an application command invocation handed to a SlashHandler.
type Interaction struct {
	Session Session
	Event   *discordgo.InteractionCreate

	responded atomic.Bool
}

// NewInteraction wraps an interaction event.
func NewInteraction(s Session, ev *discordgo.InteractionCreate) *Interaction {
	return &Interaction{Session: s, Event: ev}
}

// Name is the invoked command name.
func (i *Interaction) Name() string {
	return i.Data().Name
}

// Data returns the application command payload.
func (i *Interaction) Data() discordgo.ApplicationCommandInteractionData {
	return i.Event.ApplicationCommandData()
}

// User returns the invoking user, in guilds and DMs alike.
func (i *Interaction) User() *discordgo.User {
	if i.Event.Member != nil && i.Event.Member.User != nil {
		return i.Event.Member.User
	}
	if i.Event.User != nil {
		return i.Event.User
	}
	return &discordgo.User{}
}

// Responded reports whether the interaction has been answered.
func (i *Interaction) Responded() bool {
	return i.responded.Load()
}

// Reply answers the interaction with plain content. A second reply is sent
// as a followup message.
func (i *Interaction) Reply(content string) error {
	return i.respond(&discordgo.InteractionResponseData{Content: content})
}

// ReplyEphemeral answers with content only the invoker can see.
func (i *Interaction) ReplyEphemeral(content string) error {
	return i.respond(&discordgo.InteractionResponseData{Content: content, Flags: discordgo.MessageFlagsEphemeral})
}

// ReplyEmbed answers the interaction with an embed.
func (i *Interaction) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	return i.respond(&discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}})
}

func (i *Interaction) respond(data *discordgo.InteractionResponseData) error {
	if i.responded.Load() {
		_, err := i.Session.FollowupMessageCreate(i.Event.Interaction, false, &discordgo.WebhookParams{
			Content: data.Content,
			Embeds:  data.Embeds,
			Flags:   data.Flags,
		})
		return err
	}
	// Only an accepted response acknowledges the interaction; after a
	// rejected one the next reply must try InteractionRespond again.
	err := i.Session.InteractionRespond(i.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
	if err == nil {
		i.responded.Store(true)
	}
	return err
}

// Option returns the named top-level option, or nil.
func (i *Interaction) Option(name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range i.Data().Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}

// StringOption returns the named string option.
func (i *Interaction) StringOption(name string) (string, bool) {
	opt := i.Option(name)
	if opt == nil {
		return "", false
	}
	v, ok := opt.Value.(string)
	return v, ok
}

// UserOption returns the named user option, resolved when the payload carries
// the user, else only its id.
func (i *Interaction) UserOption(name string) *discordgo.User {
	opt := i.Option(name)
	if opt == nil {
		return nil
	}
	id, ok := opt.Value.(string)
	if !ok {
		return nil
	}
	if resolved := i.Data().Resolved; resolved != nil {
		if u, ok := resolved.Users[id]; ok {
			return u
		}
	}
	return &discordgo.User{ID: id}
}

// TargetMessage returns the message a message context menu was opened on.
func (i *Interaction) TargetMessage() *discordgo.Message {
	data := i.Data()
	if data.Resolved == nil || data.TargetID == "" {
		return nil
	}
	return data.Resolved.Messages[data.TargetID]
}

// Message is a chat message that invoked a PrefixHandler.
type Message struct {
	Session Session
	Event   *discordgo.MessageCreate
}

// Author returns the message author.
func (m *Message) Author() *discordgo.User {
	if m.Event.Author == nil {
		return &discordgo.User{}
	}
	return m.Event.Author
}

// Reply answers in the same channel, referencing the invoking message.
func (m *Message) Reply(content string) error {
	_, err := m.Session.ChannelMessageSendReply(m.Event.ChannelID, content, m.Event.Reference())
	return err
}

// ReplyEmbed answers with an embed, referencing the invoking message.
func (m *Message) ReplyEmbed(embed *discordgo.MessageEmbed) error {
	_, err := m.Session.ChannelMessageSendEmbedReply(m.Event.ChannelID, embed, m.Event.Reference())
	return err
}
