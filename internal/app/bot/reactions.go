package bot

import (
	"context"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

// PerformReactions aplica las reacciones en orden, una después de la otra.
// Si alguna falla se quitan las ya aplicadas y se devuelve el error original.
func (b *Bot) PerformReactions(ctx context.Context, msg domain.Message, emojis ...string) ([]domain.Reaction, error) {
	applied := make([]domain.Reaction, 0, len(emojis))
	for _, e := range emojis {
		r, err := b.tr.React(ctx, msg, e)
		if err != nil {
			b.rollback(ctx, applied)
			return nil, err
		}
		applied = append(applied, r)
	}
	return applied, nil
}

func (b *Bot) rollback(ctx context.Context, applied []domain.Reaction) {
	for _, r := range applied {
		if err := b.tr.RemoveReaction(ctx, r); err != nil {
			b.log.Warn("rollback reaction", "emoji", r.Emoji, "message_id", r.MessageID, "error", err)
		}
	}
}

// PerformReactionsWithFallback igual que PerformReactions, pero si falta permiso
// responde con fallback. Cualquier otro error se propaga.
func (b *Bot) PerformReactionsWithFallback(ctx context.Context, msg domain.Message, fallback string, emojis ...string) (bool, error) {
	_, err := b.PerformReactions(ctx, msg, emojis...)
	if err == nil {
		return true, nil
	}
	if !domain.IsMissingPermissions(err) {
		return false, err
	}
	if _, err := b.tr.Reply(ctx, msg, fallback); err != nil {
		return false, err
	}
	return true, nil
}
