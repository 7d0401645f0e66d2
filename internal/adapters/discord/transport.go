package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/samber/mo"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const selfReactor = "@me"

// Transport implementa bot.Transport sobre una sesión de discordgo.
type Transport struct {
	s      *discordgo.Session
	log    *slog.Logger
	waiter *reactionWaiter
}

// NewTransport registra el handler de reacciones que alimenta AwaitReaction.
func NewTransport(s *discordgo.Session, log *slog.Logger) *Transport {
	t := &Transport{s: s, log: log, waiter: newReactionWaiter()}
	s.AddHandler(t.onReactionAdd)
	return t
}

func (t *Transport) onReactionAdd(_ *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r == nil || r.MessageReaction == nil {
		return
	}
	t.waiter.deliver(domain.ReactionEvent{
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		UserID:    r.UserID,
		Emoji:     r.Emoji.APIName(),
	})
}

func (t *Transport) Self() domain.User {
	if t.s.State == nil || t.s.State.User == nil {
		return domain.User{}
	}
	return toUser(t.s.State.User)
}

// DisplayName usa el apodo del bot en el guild y si no tiene, el username.
func (t *Transport) DisplayName(ctx context.Context, msg domain.Message) string {
	self := t.Self()
	if msg.IsDM() || self.ID == "" {
		return self.Username
	}
	member, err := t.s.State.Member(msg.GuildID, self.ID)
	if err != nil {
		member, err = t.s.GuildMember(msg.GuildID, self.ID, discordgo.WithContext(ctx))
		if err != nil {
			t.log.Debug("display name lookup failed", "guild_id", msg.GuildID, "error", err)
			return self.Username
		}
		_ = t.s.State.MemberAdd(member)
	}
	if member.Nick != "" {
		return member.Nick
	}
	return self.Username
}

// ToMessage convierte un MessageCreate al modelo de dominio.
func (t *Transport) ToMessage(ctx context.Context, m *discordgo.Message) domain.Message {
	self := t.Self()
	name := t.DisplayName(ctx, domain.Message{GuildID: m.GuildID})
	return toMessage(t.s, m, self.ID, name)
}

func (t *Transport) Reply(ctx context.Context, msg domain.Message, text string) (domain.Message, error) {
	sent, err := t.s.ChannelMessageSendComplex(msg.ChannelID, &discordgo.MessageSend{
		Content: text,
		Reference: &discordgo.MessageReference{
			MessageID: msg.ID,
			ChannelID: msg.ChannelID,
			GuildID:   msg.GuildID,
		},
		AllowedMentions: &discordgo.MessageAllowedMentions{RepliedUser: true},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Message{}, classify("reply", err)
	}
	return t.sentMessage(sent), nil
}

func (t *Transport) SendPrivate(ctx context.Context, userID, text string) (domain.Message, error) {
	ch, err := t.s.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Message{}, classify("open dm", err)
	}
	sent, err := t.s.ChannelMessageSend(ch.ID, text, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Message{}, classify("send dm", err)
	}
	return t.sentMessage(sent), nil
}

func (t *Transport) Edit(ctx context.Context, msg domain.Message, text string) (domain.Message, error) {
	sent, err := t.s.ChannelMessageEdit(msg.ChannelID, msg.ID, text, discordgo.WithContext(ctx))
	if err != nil {
		return domain.Message{}, classify("edit", err)
	}
	return t.sentMessage(sent), nil
}

func (t *Transport) React(ctx context.Context, msg domain.Message, emoji string) (domain.Reaction, error) {
	if err := t.s.MessageReactionAdd(msg.ChannelID, msg.ID, emoji, discordgo.WithContext(ctx)); err != nil {
		return domain.Reaction{}, classify(fmt.Sprintf("react %s", emoji), err)
	}
	return domain.Reaction{ChannelID: msg.ChannelID, MessageID: msg.ID, Emoji: emoji}, nil
}

func (t *Transport) RemoveReaction(ctx context.Context, r domain.Reaction) error {
	err := t.s.MessageReactionRemove(r.ChannelID, r.MessageID, r.Emoji, selfReactor, discordgo.WithContext(ctx))
	return classify(fmt.Sprintf("unreact %s", r.Emoji), err)
}

func (t *Transport) AwaitReaction(ctx context.Context, msg domain.Message, filter func(domain.ReactionEvent) bool, timeout time.Duration) (mo.Option[domain.ReactionEvent], error) {
	return t.waiter.await(ctx, msg.ID, filter, timeout)
}

// sentMessage convierte lo que devuelve la API; los mensajes propios no necesitan nombre de canal.
func (t *Transport) sentMessage(m *discordgo.Message) domain.Message {
	if m == nil {
		return domain.Message{}
	}
	return toMessage(nil, m, "", "")
}
