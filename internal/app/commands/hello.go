package commands

import (
	"context"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

const emojiWave = "👋"

func Hello(a Actions) bot.Command {
	return bot.Command{
		Name:        "hello",
		Aliases:     []string{"hi", emojiWave},
		Description: "Get a wave!",
		Process: func(ctx context.Context, _ string, msg domain.Message, _ string) (bool, error) {
			return a.PerformReactionsWithFallback(ctx, msg, "hello!", emojiWave)
		},
	}
}
