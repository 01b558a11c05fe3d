package cli

import (
	"context"
	"os"
	"testing"

	"github.com/alexanderramin/faqbot/internal/config"
	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const wireKB = `[
	{"keywords": ["opening hours", "what time"], "answer": "Nine to six."},
	{"keywords": ["location", "find you"], "answer": "Accra."}
]`

func wireApp(t *testing.T) *App {
	t.Helper()
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "faqs.json", []byte(wireKB), 0o644))

	cfg := config.DefaultConfig()
	cfg.KnowledgeBasePath = "faqs.json"
	cfg.UnansweredLogPath = "logs/unanswered.log"
	cfg.FeedbackLogPath = "logs/feedback.log"

	app := &App{Config: cfg, Fs: mem, Logger: observability.NopLogger()}
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestWireServices_TextLogsOnly(t *testing.T) {
	app := wireApp(t)

	require.NoError(t, WireServices(app, Needs{Conversation: true}))
	require.NotNil(t, app.Conversation)
	assert.Nil(t, app.Reports)
	assert.NotNil(t, app.Metrics)

	reply := app.Conversation.Ask(context.Background(), "Do you sell buttons?")
	assert.Equal(t, service.ReplyFallback, reply.Kind)

	data, err := afero.ReadFile(app.Fs, "logs/unanswered.log")
	require.NoError(t, err)
	assert.Regexp(t, `^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] do you sell buttons\n$`, string(data))
}

func TestWireServices_WithStore(t *testing.T) {
	app := wireApp(t)
	app.Config.DatabaseDSN = ":memory:"

	require.NoError(t, WireServices(app, Needs{Conversation: true}))
	require.NotNil(t, app.Reports)
	require.NotNil(t, app.Import)

	ctx := context.Background()
	app.Conversation.Ask(ctx, "gift cards?")
	app.Conversation.Ask(ctx, "Gift cards")

	rows, err := app.Reports.UnansweredSummary(ctx, 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "gift cards", rows[0].Query)
	assert.Equal(t, 2, rows[0].Count)

	require.NoError(t, app.Conversation.RecordFeedback(ctx, "what time?", "Nine to six.", true))
	summary, err := app.Reports.FeedbackSummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 1, summary[0].Helpful)
}

func TestWireServices_StoreOnlySkipsKnowledgeBase(t *testing.T) {
	app := wireApp(t)
	app.Config.DatabaseDSN = ":memory:"
	app.Config.KnowledgeBasePath = "missing.json"

	require.NoError(t, WireServices(app, Needs{Store: true}))
	assert.NotNil(t, app.Reports)
	assert.Nil(t, app.Conversation)
}

func TestWireServices_Errors(t *testing.T) {
	t.Run("missing knowledge base", func(t *testing.T) {
		app := wireApp(t)
		app.Config.KnowledgeBasePath = "missing.json"

		err := WireServices(app, Needs{Conversation: true})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "loading knowledge base")
	})

	t.Run("store required", func(t *testing.T) {
		app := wireApp(t)
		assert.ErrorIs(t, WireServices(app, Needs{Store: true}), ErrNoStore)
	})

	t.Run("invalid log format", func(t *testing.T) {
		app := wireApp(t)
		app.Config.LogFormat = "xml"
		assert.ErrorContains(t, WireServices(app, Needs{}), "invalid configuration")
	})
}

func TestWireServices_UnreachableSinksAreSkipped(t *testing.T) {
	app := wireApp(t)
	app.Config.DatabaseDSN = "/dev/null/curation.db"
	app.Config.RedisAddr = "127.0.0.1:1"

	require.NoError(t, WireServices(app, Needs{Conversation: true}))
	require.NotNil(t, app.Conversation)
	assert.Nil(t, app.Reports)

	ctx := context.Background()
	reply := app.Conversation.Ask(ctx, "what time do you open")
	assert.Equal(t, service.ReplyAnswer, reply.Kind)
	app.Conversation.Ask(ctx, "gift cards")

	data, err := afero.ReadFile(app.Fs, "logs/unanswered.log")
	require.NoError(t, err)
	assert.Contains(t, string(data), "] gift cards\n")
}

func TestWireServices_UnreachableStoreFailsStoreCommands(t *testing.T) {
	app := wireApp(t)
	app.Config.DatabaseDSN = "/dev/null/curation.db"

	err := WireServices(app, Needs{Store: true})
	assert.ErrorContains(t, err, "opening curation store")
}

func TestWireServices_ThresholdsFromConfig(t *testing.T) {
	app := wireApp(t)
	app.Config.MatchThreshold = 100

	require.NoError(t, WireServices(app, Needs{Conversation: true}))

	ex := app.Conversation.Explain("what time do you open")
	assert.Equal(t, 100, ex.Thresholds.MatchThreshold)
	assert.Equal(t, 100, ex.BestScore)
}
