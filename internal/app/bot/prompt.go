package bot

import (
	"context"
	"slices"
	"time"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const PromptTimeout = 15 * time.Second

type PromptResult int

const (
	PromptTimedOut PromptResult = iota
	PromptAffirmative
	PromptNegative
)

func (p PromptResult) String() string {
	switch p {
	case PromptAffirmative:
		return "affirmative"
	case PromptNegative:
		return "negative"
	default:
		return "timed_out"
	}
}

// EmojiPrompt reacciona con ✅/❌ sobre prompt y espera la elección de userID.
// Las reacciones propias se quitan siempre, haya o no respuesta.
func (b *Bot) EmojiPrompt(ctx context.Context, prompt domain.Message, userID string) (PromptResult, error) {
	options := []string{EmojiYes, EmojiNo}
	applied, err := b.PerformReactions(ctx, prompt, options...)
	if err != nil {
		return PromptTimedOut, err
	}
	defer b.rollback(context.WithoutCancel(ctx), applied)

	filter := func(ev domain.ReactionEvent) bool {
		return ev.UserID == userID && slices.Contains(options, ev.Emoji)
	}
	got, err := b.tr.AwaitReaction(ctx, prompt, filter, PromptTimeout)
	if err != nil {
		return PromptTimedOut, err
	}
	ev, ok := got.Get()
	if !ok {
		return PromptTimedOut, nil
	}
	if ev.Emoji == EmojiYes {
		return PromptAffirmative, nil
	}
	return PromptNegative, nil
}
