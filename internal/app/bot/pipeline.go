package bot

import (
	"context"
	"crypto/rand"
	"fmt"
	"regexp"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const unrecognizedReply = "sorry, I don't understand what you mean."

// HandleInboundMessage es el único punto de entrada que registra el transport.
// Nunca devuelve error: las fallas van al ErrorReporter.
func (b *Bot) HandleInboundMessage(ctx context.Context, msg domain.Message) (handled bool) {
	runID := newRunID()
	log := b.log.With("run", runID, "message_id", msg.ID)
	start := time.Now()

	defer func() {
		if rec := recover(); rec != nil {
			b.stats.failures.Add(1)
			b.reporter.ReportError(ctx, fmt.Errorf("panic processing message: %v", rec), msg)
			handled = false
		}
		log.Debug("message settled", "handled", handled, "took", time.Since(start))
	}()

	b.stats.received.Add(1)
	log.Debug(msg.DebugString())

	ok, err := b.processMessage(ctx, msg)
	if err != nil {
		b.stats.failures.Add(1)
		b.reporter.ReportError(ctx, err, msg)
		return false
	}
	return ok
}

func (b *Bot) processMessage(ctx context.Context, msg domain.Message) (bool, error) {
	if msg.Author.ID == b.tr.Self().ID {
		return false, nil
	}

	addressed, text, err := b.CheckMessageAddressesMe(ctx, msg)
	if err != nil {
		return false, fmt.Errorf("address: %w", err)
	}
	if addressed {
		b.stats.addressed.Add(1)
		return b.processMention(ctx, msg, text)
	}
	return b.processGenericMessage(ctx, msg)
}

func (b *Bot) processMention(ctx context.Context, msg domain.Message, text string) (bool, error) {
	ok, err := b.ProcessCommand(ctx, text, msg)
	if err != nil {
		return false, err
	}
	if ok {
		b.stats.commands.Add(1)
		return true, nil
	}

	b.stats.unrecognized.Add(1)
	if _, err := b.tr.React(ctx, msg, EmojiUnrecognized); err != nil && !domain.IsMissingPermissions(err) {
		return false, err
	}
	return false, nil
}

func (b *Bot) processGenericMessage(ctx context.Context, msg domain.Message) (bool, error) {
	text, ok := b.GetCommand(msg.Content)
	if !ok {
		return true, nil
	}

	handled, err := b.ProcessCommand(ctx, text, msg)
	if err != nil {
		return false, err
	}
	if handled {
		b.stats.commands.Add(1)
		return true, nil
	}

	b.stats.unrecognized.Add(1)
	return b.PerformReactionsWithFallback(ctx, msg, unrecognizedReply, EmojiUnrecognized)
}

// GetCommand devuelve el texto después del prefijo si le sigue un caracter de palabra.
func (b *Bot) GetCommand(content string) (string, bool) {
	re := regexp.MustCompile(`(?s)^` + regexp.QuoteMeta(b.Prefix()) + `(\w.*)$`)
	m := re.FindStringSubmatch(content)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func newRunID() string {
	return "msg_" + ulid.MustNew(ulid.Timestamp(time.Now()), ulid.Monotonic(rand.Reader, 0)).String()
}
