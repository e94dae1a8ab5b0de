package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/config"
)

// Intents requested on the gateway connection.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildBans |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsMessageContent

// NewSession creates an unopened gateway session for the bot token.
func NewSession(cfg config.BotConfig) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = Intents
	return s, nil
}

// Bot owns the gateway connection and feeds its events to a Dispatcher.
type Bot struct {
	session    *discordgo.Session
	dispatcher *Dispatcher
	logger     *zap.Logger
	ctx        context.Context
	started    time.Time
}

// New attaches dispatcher to session. ctx is handed to every handler.
func New(ctx context.Context, session *discordgo.Session, dispatcher *Dispatcher, logger *zap.Logger) *Bot {
	b := &Bot{
		session:    session,
		dispatcher: dispatcher,
		logger:     logger,
		ctx:        ctx,
		started:    time.Now(),
	}
	session.AddHandler(b.onReady)
	session.AddHandler(b.onInteraction)
	session.AddHandler(b.onMessage)
	return b
}

// Open connects to the gateway.
func (b *Bot) Open() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open gateway: %w", err)
	}
	return nil
}

// Ping reports whether the gateway has delivered its Ready payload.
func (b *Bot) Ping(context.Context) error {
	b.session.RLock()
	ready := b.session.DataReady
	b.session.RUnlock()
	if !ready {
		return errors.New("gateway not ready")
	}
	return nil
}

// Close disconnects and waits for background developer checks.
func (b *Bot) Close() error {
	err := b.session.Close()
	b.dispatcher.Wait()
	return err
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	fields := []zap.Field{zap.Duration("startup", time.Since(b.started)), zap.Int("guilds", len(r.Guilds))}
	if r.User != nil {
		fields = append(fields, zap.String("user", r.User.String()))
	}
	b.logger.Info("readied", fields...)
}

func (b *Bot) onInteraction(s *discordgo.Session, ev *discordgo.InteractionCreate) {
	b.dispatcher.HandleInteraction(b.ctx, s, ev)
}

func (b *Bot) onMessage(s *discordgo.Session, ev *discordgo.MessageCreate) {
	b.dispatcher.HandleMessage(b.ctx, s, ev)
}
