package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jose-valero/harmony-bot/internal/app/bot"
	"github.com/jose-valero/harmony-bot/internal/domain"
)

const testUserID = "user-1001"

type commandsTestFixture struct {
	actions *MockActions
	prefs   *MockPreferenceStore
	ctx     context.Context
	msg     domain.Message
}

func setupCommandsTest(t *testing.T) *commandsTestFixture {
	t.Helper()
	prefs := new(MockPreferenceStore)
	return &commandsTestFixture{
		actions: &MockActions{prefs: prefs},
		prefs:   prefs,
		ctx:     context.Background(),
		msg: domain.Message{
			ID:           "4001",
			ChannelID:    "channel-3000",
			Author:       domain.User{ID: testUserID, Username: "Temp", Discriminator: "1234"},
			Content:      "!cmd",
			CleanContent: "!cmd",
		},
	}
}

func (f *commandsTestFixture) assertAllExpectations(t *testing.T) {
	f.actions.AssertExpectations(t)
	f.prefs.AssertExpectations(t)
}

func TestBuiltin_Order(t *testing.T) {
	f := setupCommandsTest(t)

	cmds := Builtin(f.actions)

	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"help", "hello", "dice", "payAttention"}, names)

	_, err := bot.NewRegistry(cmds...)
	require.NoError(t, err)
}

func TestHelp_ListsCommands(t *testing.T) {
	f := setupCommandsTest(t)
	f.actions.cmds = []bot.Command{Help(f.actions), Hello(f.actions)}
	f.actions.On("Prefix").Return("!")
	f.actions.On("DisplayName", f.ctx, f.msg).Return("Harmony")

	want := "to use my commands, either prefix the command with a `!` or 'at' me with the command " +
		"(e.g. `!help`, `@Harmony, help`).\n\n" +
		"**Commands**\n" +
		"`help`: Get some help!\n" +
		"`hello`: Get a wave! [aliased to `hi`, `👋`]\n"
	f.actions.On("LongRespondTo", f.ctx, f.msg, want, mo.None[string]()).Return(bot.Delivery{}, nil).Once()

	ok, err := Help(f.actions).Process(f.ctx, "help", f.msg, "")

	require.NoError(t, err)
	assert.True(t, ok)
	f.assertAllExpectations(t)
}

func TestHelp_UsesCurrentPrefix(t *testing.T) {
	f := setupCommandsTest(t)
	f.actions.On("Prefix").Return("?")

	text := helpText(f.actions, "Bot")

	assert.Contains(t, text, "prefix the command with a `?`")
	assert.Contains(t, text, "(e.g. `?help`, `@Bot, help`)")
}

func TestHello_WavesWithFallback(t *testing.T) {
	f := setupCommandsTest(t)
	f.actions.On("PerformReactionsWithFallback", f.ctx, f.msg, "hello!", []string{"👋"}).Return(true, nil).Once()

	ok, err := Hello(f.actions).Process(f.ctx, "hi", f.msg, "")

	require.NoError(t, err)
	assert.True(t, ok)
	f.assertAllExpectations(t)
}

func fixedRoller(values ...int) Roller {
	i := 0
	return func(faces int) int {
		v := values[i%len(values)]
		i++
		return v
	}
}

func TestDice_Rolls(t *testing.T) {
	cases := []struct {
		name, command, args string
		rolls               []int
		want, summary       string
	}{
		{"single die", "dice 1d20", "1d20", []int{17}, "result: 17", "(Roll totaled 17)"},
		{"many dice", "roll 3d6", "3d6", []int{1, 2, 3}, "total: 6", "(Roll totaled 6)"},
		{"showroll", "showroll 3d6", "3d6", []int{4, 5, 6}, "rolls: 4, 5, 6\ntotal: 15", "(Roll totaled 15)"},
		{"showroll single", "showroll 1d6", "1d6", []int{2}, "result: 2", "(Roll totaled 2)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupCommandsTest(t)
			f.actions.On("LongRespondTo", f.ctx, f.msg, tc.want, mo.Some(tc.summary)).Return(bot.Delivery{}, nil).Once()

			ok, err := Dice(f.actions, fixedRoller(tc.rolls...)).Process(f.ctx, tc.command, f.msg, tc.args)

			require.NoError(t, err)
			assert.True(t, ok)
			f.assertAllExpectations(t)
		})
	}
}

func TestDice_RejectsBadInput(t *testing.T) {
	cases := map[string]string{
		"":                       "I don't understand that dice roll format.",
		"d6":                     "I don't understand that dice roll format.",
		"2d6 extra":              "I don't understand that dice roll format.",
		"two dice":               "I don't understand that dice roll format.",
		"500d6":                  "please use a smaller number of dice (less than 500).",
		"99999999999999999999d6": "please use a smaller number of dice (less than 500).",
		"2d0":                    "please use dice with at least 1 face.",
		"0d6":                    "please roll at least one die.",
	}
	for args, want := range cases {
		t.Run(args, func(t *testing.T) {
			f := setupCommandsTest(t)
			f.actions.On("Reply", f.ctx, f.msg, want).Return(domain.Message{}, nil).Once()
			roll := func(int) int {
				t.Fatal("no dice should be rolled")
				return 0
			}

			ok, err := Dice(f.actions, roll).Process(f.ctx, "dice "+args, f.msg, args)

			require.NoError(t, err)
			assert.True(t, ok)
			f.actions.AssertNotCalled(t, "LongRespondTo", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.assertAllExpectations(t)
		})
	}
}

func TestDice_DefaultRollerStaysInRange(t *testing.T) {
	for range 1000 {
		r := defaultRoller(6)
		require.GreaterOrEqual(t, r, 1)
		require.LessOrEqual(t, r, 6)
	}
}

func TestPayAttention_Toggles(t *testing.T) {
	cases := []struct {
		name    string
		current mo.Option[any]
		next    bool
		reply   string
	}{
		{"unset turns on", mo.None[any](), true, "I'll now ask if you want me to respond when you say my name."},
		{"off turns on", mo.Some[any](false), true, "I'll now ask if you want me to respond when you say my name."},
		{"on turns off", mo.Some[any](true), false, "I'll now ignore when you say my name, unless you @ me."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := setupCommandsTest(t)
			f.prefs.On("GetUserData", f.ctx, testUserID, bot.PrefWantsMoreCheck).Return(tc.current, nil).Once()
			f.prefs.On("SetUserData", f.ctx, testUserID, map[string]any{bot.PrefWantsMoreCheck: tc.next}).Return(nil).Once()
			f.actions.On("Reply", f.ctx, f.msg, tc.reply).Return(domain.Message{}, nil).Once()

			ok, err := PayAttention(f.actions).Process(f.ctx, "payAttention", f.msg, "")

			require.NoError(t, err)
			assert.True(t, ok)
			f.assertAllExpectations(t)
		})
	}
}

func TestPayAttention_StoreFailure(t *testing.T) {
	f := setupCommandsTest(t)
	boom := errors.New("disk full")
	f.prefs.On("GetUserData", f.ctx, testUserID, bot.PrefWantsMoreCheck).Return(mo.None[any](), nil).Once()
	f.prefs.On("SetUserData", f.ctx, testUserID, mock.Anything).Return(boom).Once()

	ok, err := PayAttention(f.actions).Process(f.ctx, "attention", f.msg, "")

	assert.False(t, ok)
	assert.ErrorIs(t, err, boom)
	f.actions.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything, mock.Anything)
	f.assertAllExpectations(t)
}
