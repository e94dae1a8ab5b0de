package bot

import (
	"context"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// SlashHandler serves an application command (chat input or context menu).
type SlashHandler interface {
	Definition() *discordgo.ApplicationCommand
	Execute(ctx context.Context, in *Interaction) error
}

// PrefixHandler serves a legacy text command.
type PrefixHandler interface {
	Name() string
	Aliases() []string
	Execute(ctx context.Context, msg *Message, args []string) error
}

// Registry maps command identifiers to handlers. It is built once and only
// read afterwards, so lookups need no locking.
type Registry struct {
	slash       map[string]SlashHandler
	slashOrder  []string
	prefix      map[string]PrefixHandler
	prefixOrder []string
}

// NewRegistry indexes the given handlers in list order. A later handler with
// the same name replaces the earlier one and keeps its position.
func NewRegistry(slash []SlashHandler, prefix []PrefixHandler) *Registry {
	r := &Registry{
		slash:  make(map[string]SlashHandler, len(slash)),
		prefix: make(map[string]PrefixHandler, len(prefix)),
	}
	for _, h := range slash {
		name := h.Definition().Name
		if _, seen := r.slash[name]; !seen {
			r.slashOrder = append(r.slashOrder, name)
		}
		r.slash[name] = h
	}
	for _, h := range prefix {
		name := strings.ToLower(h.Name())
		if _, seen := r.prefix[name]; !seen {
			r.prefixOrder = append(r.prefixOrder, name)
		}
		r.prefix[name] = h
	}
	return r
}

// Slash resolves an application command by exact name.
func (r *Registry) Slash(name string) (SlashHandler, bool) {
	h, ok := r.slash[name]
	return h, ok
}

// Prefix resolves a text command by name, then by alias in registration order.
func (r *Registry) Prefix(id string) (PrefixHandler, bool) {
	id = strings.ToLower(id)
	if h, ok := r.prefix[id]; ok {
		return h, true
	}
	for _, name := range r.prefixOrder {
		h := r.prefix[name]
		for _, alias := range h.Aliases() {
			if strings.ToLower(alias) == id {
				return h, true
			}
		}
	}
	return nil, false
}

// SlashDefinitions returns the definitions to publish to Discord.
func (r *Registry) SlashDefinitions() []*discordgo.ApplicationCommand {
	defs := make([]*discordgo.ApplicationCommand, 0, len(r.slashOrder))
	for _, name := range r.slashOrder {
		defs = append(defs, r.slash[name].Definition())
	}
	return defs
}

// PrefixNames lists registered text command names in registration order.
func (r *Registry) PrefixNames() []string {
	return append([]string(nil), r.prefixOrder...)
}
