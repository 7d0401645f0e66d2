package commands

import (
	"context"
	"strings"

	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

func Help(a Actions) bot.Command {
	return bot.Command{
		Name:        "help",
		Description: "Get some help!",
		Process: func(ctx context.Context, _ string, msg domain.Message, _ string) (bool, error) {
			if _, err := a.LongRespondTo(ctx, msg, helpText(a, a.DisplayName(ctx, msg)), mo.None[string]()); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}

func helpText(a Actions, name string) string {
	p := a.Prefix()
	var sb strings.Builder
	sb.WriteString("to use my commands, either prefix the command with a `" + p + "` or 'at' me with the command ")
	sb.WriteString("(e.g. `" + p + "help`, `@" + name + ", help`).")
	sb.WriteString("\n\n**Commands**\n")
	for _, c := range a.ListCommands() {
		sb.WriteString(c.HelpString())
		sb.WriteString("\n")
	}
	return sb.String()
}
