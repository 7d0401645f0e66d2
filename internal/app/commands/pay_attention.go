package commands

import (
	"context"
	"fmt"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

func PayAttention(a Actions) bot.Command {
	return bot.Command{
		Name:        "payAttention",
		Aliases:     []string{"attention"},
		Description: "Have the bot pay more (or less) attention to you!",
		Process: func(ctx context.Context, _ string, msg domain.Message, _ string) (bool, error) {
			prefs := a.Preferences()
			cur, err := prefs.GetUserData(ctx, msg.Author.ID, bot.PrefWantsMoreCheck)
			if err != nil {
				return false, fmt.Errorf("read %s: %w", bot.PrefWantsMoreCheck, err)
			}
			wanted, _ := cur.OrEmpty().(bool)

			reply := "I'll now ask if you want me to respond when you say my name."
			if wanted {
				reply = "I'll now ignore when you say my name, unless you @ me."
			}
			if err := prefs.SetUserData(ctx, msg.Author.ID, map[string]any{bot.PrefWantsMoreCheck: !wanted}); err != nil {
				return false, fmt.Errorf("write %s: %w", bot.PrefWantsMoreCheck, err)
			}
			if _, err := a.Reply(ctx, msg, reply); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}
