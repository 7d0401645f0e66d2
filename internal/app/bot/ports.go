package bot

import (
	"context"
	"time"

	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

// Lo implementa internal/adapters/discord.Transport
type Transport interface {
	Self() domain.User
	// DisplayName es el nombre del bot en el contexto del mensaje (nick del guild o username).
	DisplayName(ctx context.Context, msg domain.Message) string

	Reply(ctx context.Context, msg domain.Message, text string) (domain.Message, error)
	SendPrivate(ctx context.Context, userID, text string) (domain.Message, error)
	Edit(ctx context.Context, msg domain.Message, text string) (domain.Message, error)

	React(ctx context.Context, msg domain.Message, emoji string) (domain.Reaction, error)
	RemoveReaction(ctx context.Context, r domain.Reaction) error

	// AwaitReaction espera la primera reacción sobre msg que acepte filter.
	// Al vencer timeout devuelve None sin error.
	AwaitReaction(ctx context.Context, msg domain.Message, filter func(domain.ReactionEvent) bool, timeout time.Duration) (mo.Option[domain.ReactionEvent], error)
}

// Lo implementa internal/infra/storage.PreferenceStore
type PreferenceStore interface {
	GetUserData(ctx context.Context, userID, key string) (mo.Option[any], error)
	SetUserData(ctx context.Context, userID string, data map[string]any) error
}

type ErrorReporter interface {
	ReportError(ctx context.Context, err error, msg domain.Message)
}
