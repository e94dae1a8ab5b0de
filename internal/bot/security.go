package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// DevChecker decides whether a user may run developer-only commands.
type DevChecker interface {
	IsDeveloper(ctx context.Context, user *discordgo.User) (bool, error)
}

// StaticDevList is a DevChecker backed by a fixed set of user ids.
type StaticDevList map[string]struct{}

// NewStaticDevList builds a checker from configured ids.
func NewStaticDevList(ids []string) StaticDevList {
	list := make(StaticDevList, len(ids))
	for _, id := range ids {
		list[id] = struct{}{}
	}
	return list
}

func (l StaticDevList) IsDeveloper(_ context.Context, user *discordgo.User) (bool, error) {
	if user == nil {
		return false, nil
	}
	_, ok := l[user.ID]
	return ok, nil
}
