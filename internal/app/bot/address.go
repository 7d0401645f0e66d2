package bot

import (
	"context"
	"regexp"
	"strings"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const (
	confirmQuestion = "did you want me to respond to that?"
	assumedNot      = " (assumed not)"
)

func directAddress(name string) (*regexp.Regexp, *regexp.Regexp) {
	n := regexp.QuoteMeta(name)
	return regexp.MustCompile(`^@` + n + `[,.?!]? `), regexp.MustCompile(`,? @` + n + `[?!.]?$`)
}

// nameReference matchea el nombre como palabra completa, con @ y puntuación opcionales alrededor.
func nameReference(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(^|[\s,]+)@?` + regexp.QuoteMeta(name) + `[,.?!]*(\s+|$)`)
}

// CheckMessageAddressesMe decide si el mensaje va dirigido al bot y devuelve el texto restante.
func (b *Bot) CheckMessageAddressesMe(ctx context.Context, msg domain.Message) (bool, string, error) {
	name := b.tr.DisplayName(ctx, msg)
	if name == "" {
		return false, "", nil
	}
	text := msg.CleanContent

	if msg.Mentions(b.tr.Self().ID) {
		lead, trail := directAddress(name)
		for _, re := range []*regexp.Regexp{lead, trail} {
			if loc := re.FindStringIndex(text); loc != nil {
				return true, strings.TrimSpace(text[:loc[0]] + text[loc[1]:]), nil
			}
		}
	}

	ref := nameReference(name)
	loc := ref.FindStringSubmatchIndex(text)
	if loc == nil {
		return false, "", nil
	}

	wants, err := b.wantsMoreCheck(ctx, msg.Author.ID)
	if err != nil {
		return false, "", err
	}
	if !wants {
		return false, "", nil
	}

	question, err := b.tr.Reply(ctx, msg, confirmQuestion)
	if err != nil {
		return false, "", err
	}
	res, err := b.EmojiPrompt(ctx, question, msg.Author.ID)
	if err != nil {
		return false, "", err
	}
	b.log.Debug("address prompt", "message_id", msg.ID, "result", res.String())

	switch res {
	case PromptAffirmative:
		// loc[2:4] y loc[4:6] son los separadores alrededor del nombre
		return true, strings.TrimSpace(text[:loc[2]] + " " + text[loc[5]:]), nil
	case PromptNegative:
		return false, "", nil
	default:
		if _, err := b.tr.Edit(ctx, question, question.Content+assumedNot); err != nil {
			return false, "", err
		}
		return false, "", nil
	}
}

func (b *Bot) wantsMoreCheck(ctx context.Context, userID string) (bool, error) {
	v, err := b.prefs.GetUserData(ctx, userID, PrefWantsMoreCheck)
	if err != nil {
		return false, err
	}
	want, _ := v.OrEmpty().(bool)
	return want, nil
}
