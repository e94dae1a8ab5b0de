package bot

import (
	"context"
	"fmt"
	"runtime/debug"
	"strings"
	"sync"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/staffhq/staff-bot/internal/observability"
)

// FailureReply is sent to the invoker when a handler fails. The argument is
// the incident id written to the log.
const FailureReply = "An error occurred while executing the command.\n\nError ID: %s"

// DispatcherConfig wires a Dispatcher.
type DispatcherConfig struct {
	Registry *Registry
	Prefix   string
	Dev      DevChecker
	// EnforceDevOnly runs the developer check before a prefix handler and
	// skips the handler when it fails. Otherwise the check runs alongside the
	// handler and only logs.
	EnforceDevOnly bool
	Logger         *zap.Logger
	Metrics        *observability.Metrics
}

// Dispatcher routes gateway events to registered handlers and isolates their
// failures. It is safe for concurrent use; every event is independent.
type Dispatcher struct {
	registry *Registry
	prefix   string
	dev      DevChecker
	enforce  bool
	logger   *zap.Logger
	metrics  *observability.Metrics

	mu     sync.Mutex
	closed bool
	checks sync.WaitGroup
}

// NewDispatcher builds a dispatcher.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	dev := cfg.Dev
	if dev == nil {
		dev = NewStaticDevList(nil)
	}
	return &Dispatcher{
		registry: cfg.Registry,
		prefix:   cfg.Prefix,
		dev:      dev,
		enforce:  cfg.EnforceDevOnly,
		logger:   logger,
		metrics:  cfg.Metrics,
	}
}

// Registry returns the registry the dispatcher resolves against.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// Wait stops starting background developer checks and blocks until the
// in-flight ones finish. Checks for messages arriving afterwards run inline.
func (d *Dispatcher) Wait() {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	d.checks.Wait()
}

// checkInBackground runs the developer check next to the handler. Add and
// Wait are serialized through mu so Add never races a Wait at zero.
func (d *Dispatcher) checkInBackground(ctx context.Context, user *discordgo.User) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		d.checkDeveloper(ctx, user)
		return
	}
	d.checks.Add(1)
	d.mu.Unlock()

	go func() {
		defer d.checks.Done()
		d.checkDeveloper(ctx, user)
	}()
}

// ParseCommand splits a prefixed message into a lower-cased identifier and
// its arguments. ok is false when content lacks the prefix or names nothing.
func ParseCommand(content, prefix string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(content[len(prefix):])
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// HandleInteraction dispatches chat-input and message context menu commands.
// Other interaction kinds and unknown names are ignored.
func (d *Dispatcher) HandleInteraction(ctx context.Context, s Session, ev *discordgo.InteractionCreate) {
	if ev == nil || ev.Interaction == nil || ev.Type != discordgo.InteractionApplicationCommand {
		return
	}
	data := ev.ApplicationCommandData()
	switch data.CommandType {
	case discordgo.ChatApplicationCommand, discordgo.MessageApplicationCommand:
	default:
		return
	}

	handler, ok := d.registry.Slash(data.Name)
	if !ok {
		d.logger.Debug("unknown application command", zap.String("command", data.Name))
		return
	}

	in := NewInteraction(s, ev)
	err := safeExecute(func() error { return handler.Execute(ctx, in) })
	d.metrics.RecordCommand("slash", data.Name, err != nil)
	if err == nil {
		return
	}

	user := in.User()
	id := observability.LogIncident(d.logger, err, "command failed",
		zap.String("command", data.Name),
		zap.String("user", user.String()),
		zap.String("user_id", user.ID),
		zap.String("guild_id", ev.GuildID),
		zap.Any("options", data.Options),
	)
	if replyErr := in.Reply(fmt.Sprintf(FailureReply, id)); replyErr != nil {
		d.logger.Warn("failure reply not delivered", zap.String("error_id", id), zap.Error(replyErr))
	}
}

// HandleMessage dispatches prefixed text commands from non-bot authors.
func (d *Dispatcher) HandleMessage(ctx context.Context, s Session, ev *discordgo.MessageCreate) {
	if ev == nil || ev.Message == nil || ev.Author == nil || ev.Author.Bot {
		return
	}
	name, args, ok := ParseCommand(ev.Content, d.prefix)
	if !ok {
		return
	}
	handler, ok := d.registry.Prefix(name)
	if !ok {
		return
	}

	msg := &Message{Session: s, Event: ev}
	if d.enforce {
		if !d.checkDeveloper(ctx, ev.Author) {
			return
		}
	} else {
		d.checkInBackground(ctx, ev.Author)
	}

	err := safeExecute(func() error { return handler.Execute(ctx, msg, args) })
	d.metrics.RecordCommand("prefix", handler.Name(), err != nil)
	if err == nil {
		return
	}

	id := observability.LogIncident(d.logger, err, "text command failed",
		zap.String("command", name),
		zap.String("user", ev.Author.String()),
		zap.String("user_id", ev.Author.ID),
		zap.String("guild_id", ev.GuildID),
		zap.Strings("args", args),
	)
	if replyErr := msg.Reply(fmt.Sprintf(FailureReply, id)); replyErr != nil {
		d.logger.Warn("failure reply not delivered", zap.String("error_id", id), zap.Error(replyErr))
	}
}

func (d *Dispatcher) checkDeveloper(ctx context.Context, user *discordgo.User) bool {
	ok, err := d.dev.IsDeveloper(ctx, user)
	if err != nil {
		d.logger.Warn("developer check failed", zap.String("user_id", user.ID), zap.Error(err))
	}
	if !ok {
		d.logger.Warn(fmt.Sprintf("%s (%s) tried to use a developer only command", user.String(), user.ID))
	}
	return ok
}

func safeExecute(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v\n%s", r, debug.Stack())
		}
	}()
	return fn()
}
