package discord

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

func toUser(u *discordgo.User) domain.User {
	if u == nil {
		return domain.User{}
	}
	return domain.User{
		ID:            u.ID,
		Username:      u.Username,
		Discriminator: u.Discriminator,
		Bot:           u.Bot,
	}
}

// toMessage arma la vista de dominio. selfName es el nombre con el que el bot
// aparece en el canal, para que sus menciones se rendericen igual que DisplayName.
func toMessage(s *discordgo.Session, m *discordgo.Message, selfID, selfName string) domain.Message {
	msg := domain.Message{
		ID:             m.ID,
		ChannelID:      m.ChannelID,
		GuildID:        m.GuildID,
		Author:         toUser(m.Author),
		Content:        m.Content,
		CleanContent:   cleanContent(s, m, selfID, selfName),
		HasAttachments: len(m.Attachments) > 0,
		HasEmbeds:      len(m.Embeds) > 0,
	}
	for _, u := range m.Mentions {
		if u != nil {
			msg.MentionIDs = append(msg.MentionIDs, u.ID)
		}
	}
	for _, r := range m.Reactions {
		if r != nil && r.Emoji != nil {
			msg.Reactions = append(msg.Reactions, r.Emoji.APIName())
		}
	}
	if s != nil && s.State != nil {
		if ch, err := s.State.Channel(m.ChannelID); err == nil && ch != nil {
			msg.ChannelName = ch.Name
		}
	}
	return msg
}

func cleanContent(s *discordgo.Session, m *discordgo.Message, selfID, selfName string) string {
	cp := *m
	if selfID != "" && selfName != "" {
		cp.Content = strings.NewReplacer(
			"<@"+selfID+">", "@"+selfName,
			"<@!"+selfID+">", "@"+selfName,
		).Replace(m.Content)
	}
	if s == nil {
		return cp.ContentWithMentionsReplaced()
	}
	content, err := cp.ContentWithMoreMentionsReplaced(s)
	if err != nil {
		return cp.ContentWithMentionsReplaced()
	}
	return content
}
