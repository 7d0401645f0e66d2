package discord

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// RouteLogs manda el logger interno de discordgo a slog.
func RouteLogs(log *slog.Logger) {
	discordgo.Logger = func(msgL, caller int, format string, a ...interface{}) {
		log.Log(context.Background(), levelFor(msgL), fmt.Sprintf(format, a...), "source", "discordgo")
	}
}

func levelFor(msgL int) slog.Level {
	switch msgL {
	case discordgo.LogError:
		return slog.LevelError
	case discordgo.LogWarning:
		return slog.LevelWarn
	default:
		return slog.LevelDebug
	}
}
