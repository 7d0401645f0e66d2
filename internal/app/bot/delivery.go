package bot

import (
	"context"
	"fmt"

	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const (
	maxInlineLength  = 1000
	maxSummaryLength = 200
	maxLongLength    = 3900
	chunkLength      = 1950
	ellipsis         = "..."
)

// Ack es lo que quedó en el canal después de mandar los PMs.
type Ack struct {
	Reactions []domain.Reaction
	Notice    mo.Option[domain.Message]
}

type Delivery struct {
	Inline  mo.Option[domain.Message]
	Private []domain.Message
	Ack     Ack
}

// LongRespondTo responde inline si el texto es corto; si no, lo manda por PM en
// partes y deja un aviso (reacción o mensaje) en el canal.
func (b *Bot) LongRespondTo(ctx context.Context, msg domain.Message, text string, summary mo.Option[string]) (Delivery, error) {
	if runeLen(text) <= maxInlineLength {
		sent, err := b.tr.Reply(ctx, msg, text)
		if err != nil {
			return Delivery{}, err
		}
		return Delivery{Inline: mo.Some(sent)}, nil
	}

	if s, ok := summary.Get(); ok && runeLen(s) > maxSummaryLength {
		text = s + "\n" + text
		summary = mo.None[string]()
	}

	text, truncated := truncate(text, maxLongLength)
	chunks := splitChunks(text, chunkLength)

	pms := make([]domain.Message, 0, len(chunks))
	for _, c := range chunks {
		sent, err := b.tr.SendPrivate(ctx, msg.Author.ID, c)
		if err != nil {
			return Delivery{Private: pms}, err
		}
		pms = append(pms, sent)
	}

	notice := noticeText(truncated, len(pms))
	emojis := []string{EmojiMailbox}
	if truncated {
		emojis = append(emojis, EmojiWarning, EmojiScissors)
	}

	var ack Ack
	reacts, err := b.PerformReactions(ctx, msg, emojis...)
	if err == nil {
		ack.Reactions = reacts
		if s, ok := summary.Get(); ok {
			sent, err := b.tr.Reply(ctx, msg, notice+"\n"+s)
			if err != nil {
				return Delivery{Private: pms, Ack: ack}, err
			}
			ack.Notice = mo.Some(sent)
		}
		return Delivery{Private: pms, Ack: ack}, nil
	}

	b.log.Debug("long response ack reaction failed, sending notice", "message_id", msg.ID, "error", err)
	if s, ok := summary.Get(); ok {
		notice += "\n" + s
	}
	sent, err := b.tr.Reply(ctx, msg, notice)
	if err != nil {
		return Delivery{Private: pms, Ack: ack}, err
	}
	ack.Notice = mo.Some(sent)
	return Delivery{Private: pms, Ack: ack}, nil
}

func noticeText(truncated bool, count int) string {
	base := "that got a long response!"
	if truncated {
		base = "that got a *really* long response!"
	}
	pms := "a PM"
	if count != 1 {
		pms = fmt.Sprintf("%d PMs", count)
	}
	return base + " I sent you " + pms + "."
}

func runeLen(s string) int { return len([]rune(s)) }

func truncate(s string, max int) (string, bool) {
	r := []rune(s)
	if len(r) <= max {
		return s, false
	}
	return string(r[:max-len(ellipsis)]) + ellipsis, true
}

func splitChunks(s string, size int) []string {
	r := []rune(s)
	out := make([]string, 0, len(r)/size+1)
	for start := 0; start < len(r); start += size {
		end := min(start+size, len(r))
		out = append(out, string(r[start:end]))
	}
	return out
}
