package commands

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

const maxDice = 500

var diceFormat = regexp.MustCompile(`^(\d+)d(\d+)$`)

func Dice(a Actions, roll Roller) bot.Command {
	return bot.Command{
		Name:        "dice",
		Aliases:     []string{"d", "showroll", "roll"},
		Description: "Roll a dice! Format: `XdY`. (`showroll` performs the roll and shows the individual rolls)",
		Process: func(ctx context.Context, command string, msg domain.Message, args string) (bool, error) {
			reply := func(text string) (bool, error) {
				if _, err := a.Reply(ctx, msg, text); err != nil {
					return false, err
				}
				return true, nil
			}

			m := diceFormat.FindStringSubmatch(args)
			if m == nil {
				return reply("I don't understand that dice roll format.")
			}
			// Atoi sólo falla por overflow; se trata como "demasiados"
			count, err := strconv.Atoi(m[1])
			if err != nil || count >= maxDice {
				return reply(fmt.Sprintf("please use a smaller number of dice (less than %d).", maxDice))
			}
			faces, err := strconv.Atoi(m[2])
			if err != nil {
				return reply("I don't understand that dice roll format.")
			}
			if faces < 1 {
				return reply("please use dice with at least 1 face.")
			}
			if count < 1 {
				return reply("please roll at least one die.")
			}

			rolls := make([]string, count)
			total := 0
			for i := range rolls {
				r := roll(faces)
				total += r
				rolls[i] = strconv.Itoa(r)
			}

			var out string
			switch {
			case count == 1:
				out = fmt.Sprintf("result: %d", total)
			case strings.HasPrefix(command, "showroll"):
				out = "rolls: " + strings.Join(rolls, ", ") + "\n"
			}
			if count > 1 {
				out += fmt.Sprintf("total: %d", total)
			}

			if _, err := a.LongRespondTo(ctx, msg, out, mo.Some(fmt.Sprintf("(Roll totaled %d)", total))); err != nil {
				return false, err
			}
			return true, nil
		},
	}
}
