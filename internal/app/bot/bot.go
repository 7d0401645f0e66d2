package bot

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const (
	DefaultPrefix = "!"

	EmojiUnrecognized = "❔"
	EmojiMailbox      = "📬"
	EmojiWarning      = "⚠️"
	EmojiScissors     = "✂️"
	EmojiYes          = "✅"
	EmojiNo           = "❌"

	PrefWantsMoreCheck = "wantsMoreCheck"
)

type Options struct {
	Prefix   string
	Logger   *slog.Logger
	Reporter ErrorReporter
}

type Bot struct {
	tr       Transport
	prefs    PreferenceStore
	reporter ErrorReporter
	log      *slog.Logger

	prefix   atomic.Value // string
	registry *Registry
	stats    counters
}

// New arma el bot y construye el registro de comandos una sola vez.
// build recibe el bot ya armado para que los comandos puedan usar sus acciones.
func New(tr Transport, prefs PreferenceStore, opts Options, build func(*Bot) []Command) (*Bot, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	b := &Bot{
		tr:       tr,
		prefs:    prefs,
		reporter: opts.Reporter,
		log:      log,
	}
	if b.reporter == nil {
		b.reporter = NewLogReporter(log)
	}
	prefix := opts.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}
	b.prefix.Store(prefix)

	var cmds []Command
	if build != nil {
		cmds = build(b)
	}
	reg, err := NewRegistry(cmds...)
	if err != nil {
		return nil, fmt.Errorf("commands: %w", err)
	}
	b.registry = reg
	return b, nil
}

func (b *Bot) Prefix() string { return b.prefix.Load().(string) }

func (b *Bot) SetPrefix(p string) { b.prefix.Store(p) }

func (b *Bot) ListCommands() []Command { return b.registry.List() }

func (b *Bot) Preferences() PreferenceStore { return b.prefs }

func (b *Bot) Self() domain.User { return b.tr.Self() }

func (b *Bot) DisplayName(ctx context.Context, msg domain.Message) string {
	return b.tr.DisplayName(ctx, msg)
}

// Reply responde en el canal del mensaje.
func (b *Bot) Reply(ctx context.Context, msg domain.Message, text string) (domain.Message, error) {
	return b.tr.Reply(ctx, msg, text)
}
