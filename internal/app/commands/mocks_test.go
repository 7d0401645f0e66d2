package commands

import (
	"context"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

// MockActions implements the Actions interface for testing
type MockActions struct {
	mock.Mock
	prefs *MockPreferenceStore
	cmds  []bot.Command
}

func (m *MockActions) Prefix() string {
	return m.Called().String(0)
}

func (m *MockActions) DisplayName(ctx context.Context, msg domain.Message) string {
	return m.Called(ctx, msg).String(0)
}

func (m *MockActions) ListCommands() []bot.Command { return m.cmds }

func (m *MockActions) Preferences() bot.PreferenceStore { return m.prefs }

func (m *MockActions) Reply(ctx context.Context, msg domain.Message, text string) (domain.Message, error) {
	args := m.Called(ctx, msg, text)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *MockActions) LongRespondTo(ctx context.Context, msg domain.Message, text string, summary mo.Option[string]) (bot.Delivery, error) {
	args := m.Called(ctx, msg, text, summary)
	return args.Get(0).(bot.Delivery), args.Error(1)
}

func (m *MockActions) PerformReactionsWithFallback(ctx context.Context, msg domain.Message, fallback string, emojis ...string) (bool, error) {
	args := m.Called(ctx, msg, fallback, emojis)
	return args.Bool(0), args.Error(1)
}

// MockPreferenceStore implements the bot.PreferenceStore interface for testing
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) GetUserData(ctx context.Context, userID, key string) (mo.Option[any], error) {
	args := m.Called(ctx, userID, key)
	return args.Get(0).(mo.Option[any]), args.Error(1)
}

func (m *MockPreferenceStore) SetUserData(ctx context.Context, userID string, data map[string]any) error {
	return m.Called(ctx, userID, data).Error(0)
}
