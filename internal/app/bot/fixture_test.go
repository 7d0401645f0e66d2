package bot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

const (
	testBotID     = "bot-1000"
	testBotName   = "Harmony"
	testUserID    = "user-1001"
	testOtherID   = "user-1002"
	testChannelID = "channel-3000"
	testGuildID   = "guild-2000"
)

var errMissingPerms = &domain.PlatformError{
	Kind: domain.KindMissingPermissions,
	Op:   "react",
	Err:  errors.New("Missing Permissions"),
}

type botTestFixture struct {
	bot      *Bot
	tr       *MockTransport
	prefs    *MockPreferenceStore
	reporter *MockErrorReporter
	ctx      context.Context
}

func setupBotTest(t *testing.T, cmds ...Command) *botTestFixture {
	t.Helper()
	f := &botTestFixture{
		tr:       new(MockTransport),
		prefs:    new(MockPreferenceStore),
		reporter: new(MockErrorReporter),
		ctx:      context.Background(),
	}
	f.tr.On("Self").Return(domain.User{ID: testBotID, Username: testBotName, Bot: true}).Maybe()
	f.tr.On("DisplayName", mock.Anything, mock.Anything).Return(testBotName).Maybe()

	b, err := New(f.tr, f.prefs, Options{
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Reporter: f.reporter,
	}, func(*Bot) []Command { return cmds })
	require.NoError(t, err)
	f.bot = b
	return f
}

func (f *botTestFixture) assertAllExpectations(t *testing.T) {
	f.tr.AssertExpectations(t)
	f.prefs.AssertExpectations(t)
	f.reporter.AssertExpectations(t)
}

var nextMessageID = 4000

func newMessage(content, clean string, mentions ...string) domain.Message {
	nextMessageID++
	if clean == "" {
		clean = content
	}
	return domain.Message{
		ID:           fmt.Sprint(nextMessageID),
		ChannelID:    testChannelID,
		ChannelName:  "general",
		GuildID:      testGuildID,
		Author:       domain.User{ID: testUserID, Username: "Temp", Discriminator: "1234"},
		Content:      content,
		CleanContent: clean,
		MentionIDs:   mentions,
	}
}

func reactionOn(msg domain.Message, emoji string) domain.Reaction {
	return domain.Reaction{ChannelID: msg.ChannelID, MessageID: msg.ID, Emoji: emoji}
}

func emojisOf(rs []domain.Reaction) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Emoji
	}
	return out
}
