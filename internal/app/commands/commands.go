// Package commands contiene los comandos que trae el bot de fábrica.
package commands

import (
	"context"
	"math/rand/v2"

	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

// Actions es lo que los comandos necesitan del bot. *bot.Bot lo implementa.
type Actions interface {
	Prefix() string
	DisplayName(ctx context.Context, msg domain.Message) string
	ListCommands() []bot.Command
	Preferences() bot.PreferenceStore

	Reply(ctx context.Context, msg domain.Message, text string) (domain.Message, error)
	LongRespondTo(ctx context.Context, msg domain.Message, text string, summary mo.Option[string]) (bot.Delivery, error)
	PerformReactionsWithFallback(ctx context.Context, msg domain.Message, fallback string, emojis ...string) (bool, error)
}

// Roller devuelve un número uniforme en [1, faces].
type Roller func(faces int) int

func defaultRoller(faces int) int { return rand.IntN(faces) + 1 }

// Builtin arma los comandos en orden de precedencia.
func Builtin(a Actions) []bot.Command {
	return []bot.Command{
		Help(a),
		Hello(a),
		Dice(a, defaultRoller),
		PayAttention(a),
	}
}
