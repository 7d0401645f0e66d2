package domain

import (
	"fmt"
	"slices"
	"strings"
)

type User struct {
	ID            string
	Username      string
	Discriminator string
	Bot           bool
}

// Tag devuelve el formato clásico username#discriminator.
func (u User) Tag() string {
	if u.Discriminator == "" || u.Discriminator == "0" {
		return u.Username
	}
	return u.Username + "#" + u.Discriminator
}

// Message es la vista inmutable de un mensaje recibido. La llena el adapter.
type Message struct {
	ID          string
	ChannelID   string
	ChannelName string
	GuildID     string // vacío en DMs
	Author      User

	Content      string // texto crudo, con <@id>
	CleanContent string // menciones renderizadas como @Nombre

	MentionIDs []string
	Reactions  []string // emojis ya presentes

	HasAttachments bool
	HasEmbeds      bool
}

func (m Message) Mentions(userID string) bool {
	return slices.Contains(m.MentionIDs, userID)
}

func (m Message) IsDM() bool { return m.GuildID == "" }

// DebugString: "#general – Temp#1234: test @Nick [has attachments, has embeds]"
func (m Message) DebugString() string {
	content := m.CleanContent
	if content == "" {
		content = m.Content
	}
	s := fmt.Sprintf("#%s – %s: %s", m.ChannelName, m.Author.Tag(), content)

	var extras []string
	if m.HasAttachments {
		extras = append(extras, "has attachments")
	}
	if m.HasEmbeds {
		extras = append(extras, "has embeds")
	}
	if len(extras) > 0 {
		s += " [" + strings.Join(extras, ", ") + "]"
	}
	return s
}

// Reaction es una reacción aplicada por el bot (la que se puede revertir).
type Reaction struct {
	ChannelID string
	MessageID string
	Emoji     string
}

// ReactionEvent es una reacción que llega desde la plataforma.
type ReactionEvent struct {
	ChannelID string
	MessageID string
	UserID    string
	Emoji     string
}
