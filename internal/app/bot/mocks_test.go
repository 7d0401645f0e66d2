package bot

import (
	"context"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"github.com/jose-valero/harmony-bot/internal/domain"
)

// MockTransport implements the Transport interface for testing
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Self() domain.User {
	args := m.Called()
	return args.Get(0).(domain.User)
}

func (m *MockTransport) DisplayName(ctx context.Context, msg domain.Message) string {
	args := m.Called(ctx, msg)
	return args.String(0)
}

func (m *MockTransport) Reply(ctx context.Context, msg domain.Message, text string) (domain.Message, error) {
	args := m.Called(ctx, msg, text)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *MockTransport) SendPrivate(ctx context.Context, userID, text string) (domain.Message, error) {
	args := m.Called(ctx, userID, text)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *MockTransport) Edit(ctx context.Context, msg domain.Message, text string) (domain.Message, error) {
	args := m.Called(ctx, msg, text)
	return args.Get(0).(domain.Message), args.Error(1)
}

func (m *MockTransport) React(ctx context.Context, msg domain.Message, emoji string) (domain.Reaction, error) {
	args := m.Called(ctx, msg, emoji)
	return args.Get(0).(domain.Reaction), args.Error(1)
}

func (m *MockTransport) RemoveReaction(ctx context.Context, r domain.Reaction) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockTransport) AwaitReaction(
	ctx context.Context,
	msg domain.Message,
	filter func(domain.ReactionEvent) bool,
	timeout time.Duration,
) (mo.Option[domain.ReactionEvent], error) {
	args := m.Called(ctx, msg, filter, timeout)
	return args.Get(0).(mo.Option[domain.ReactionEvent]), args.Error(1)
}

// MockPreferenceStore implements the PreferenceStore interface for testing
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) GetUserData(ctx context.Context, userID, key string) (mo.Option[any], error) {
	args := m.Called(ctx, userID, key)
	return args.Get(0).(mo.Option[any]), args.Error(1)
}

func (m *MockPreferenceStore) SetUserData(ctx context.Context, userID string, data map[string]any) error {
	args := m.Called(ctx, userID, data)
	return args.Error(0)
}

// MockErrorReporter implements the ErrorReporter interface for testing
type MockErrorReporter struct {
	mock.Mock
}

func (m *MockErrorReporter) ReportError(ctx context.Context, err error, msg domain.Message) {
	m.Called(ctx, err, msg)
}
