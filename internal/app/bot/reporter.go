package bot

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

type LogReporter struct {
	log *slog.Logger
}

func NewLogReporter(log *slog.Logger) *LogReporter { return &LogReporter{log: log} }

func (r *LogReporter) ReportError(ctx context.Context, err error, msg domain.Message) {
	r.log.ErrorContext(ctx, "message pipeline failed",
		"error", err,
		"error_kind", domain.KindOf(err).String(),
		"message_id", msg.ID,
		"channel_id", msg.ChannelID,
		"author", msg.Author.Tag())
}

type counters struct {
	received     atomic.Int64
	addressed    atomic.Int64
	commands     atomic.Int64
	unrecognized atomic.Int64
	failures     atomic.Int64
}

type Stats struct {
	Received     int64 `json:"received"`
	Addressed    int64 `json:"addressed"`
	Commands     int64 `json:"commands"`
	Unrecognized int64 `json:"unrecognized"`
	Failures     int64 `json:"failures"`
}

func (b *Bot) Stats() Stats {
	return Stats{
		Received:     b.stats.received.Load(),
		Addressed:    b.stats.addressed.Load(),
		Commands:     b.stats.commands.Load(),
		Unrecognized: b.stats.unrecognized.Load(),
		Failures:     b.stats.failures.Load(),
	}
}
