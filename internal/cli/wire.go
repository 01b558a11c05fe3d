package cli

import (
	"fmt"
	"os"

	"github.com/alexanderramin/faqbot/internal/db"
	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/alexanderramin/faqbot/internal/knowledge"
	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/alexanderramin/faqbot/internal/repository"
	"github.com/alexanderramin/faqbot/internal/resolver"
	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/alexanderramin/faqbot/internal/sink"
)

// WireServices builds the services a command needs from app.Config. The
// text log sinks are always on; the SQL store and Redis are added when
// configured. An unreachable store or Redis is logged and skipped, unless
// the command reads from the store.
func WireServices(app *App, needs Needs) error {
	cfg := app.Config
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if app.Logger == nil {
		app.Logger = observability.NewLogger(observability.LogConfig{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: os.Stderr,
		})
	}
	if app.Metrics == nil {
		app.Metrics = observability.NewMetrics()
	}
	fsys := app.fs()

	if !needs.Conversation && !needs.Store {
		return nil
	}

	// Load the knowledge base before opening connections so a bad file
	// fails fast.
	var kb domain.KnowledgeBase
	if needs.Conversation {
		loaded, err := knowledge.Load(fsys, cfg.KnowledgeBasePath)
		if err != nil {
			app.Logger.Error().Err(err).Str("path", cfg.KnowledgeBasePath).Msg("knowledge base rejected")
			return fmt.Errorf("loading knowledge base: %w", err)
		}
		kb = loaded
	}

	sinks := sink.Multi{
		sink.NewObserved("file", sink.NewFileSink(fsys, cfg.UnansweredLogPath, cfg.FeedbackLogPath), app.Metrics, app.Logger),
	}

	if cfg.DatabaseDSN != "" {
		store, err := db.Open(cfg.DatabaseDSN)
		switch {
		case err != nil && needs.Store:
			return fmt.Errorf("opening curation store: %w", err)
		case err != nil:
			// Conversations only write to the store, and losing a sink
			// never stops the bot.
			app.Logger.Warn().Err(err).Msg("curation store unavailable, continuing without it")
		default:
			app.OnClose(store.Close)

			unanswered := repository.NewSQLUnansweredRepo(store.DB, store.Dialect)
			feedback := repository.NewSQLFeedbackRepo(store.DB, store.Dialect)
			app.Reports = service.NewReportService(unanswered, feedback)
			app.Import = service.NewImportService(fsys, store, service.NewLogUseCaseObserver(app.Logger))
			sinks = append(sinks, sink.NewObserved(store.Dialect.String(), sink.NewStoreSink(unanswered, feedback), app.Metrics, app.Logger))
		}
	} else if needs.Store {
		return ErrNoStore
	}

	if !needs.Conversation {
		return nil
	}

	if cfg.RedisAddr != "" {
		rs, err := sink.NewRedisSink(sink.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			Prefix:   cfg.RedisPrefix,
		})
		if err != nil {
			app.Logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, continuing without it")
		} else {
			app.OnClose(rs.Close)
			sinks = append(sinks, sink.NewObserved("redis", rs, app.Metrics, app.Logger))
		}
	}

	r := resolver.New(resolver.Config{
		MatchThreshold:         cfg.MatchThreshold,
		ClarificationThreshold: cfg.ClarificationThreshold,
		FallbackTopics:         cfg.FallbackTopics,
	}, sinks, app.Logger)

	app.Conversation = service.NewConversationService(kb, r, sinks, cfg.BusinessName, app.Logger,
		service.WithMetrics(app.Metrics),
		service.WithObserver(service.NewLogUseCaseObserver(app.Logger)),
	)
	app.Logger.Debug().
		Int("entries", kb.Len()).
		Int("sinks", len(sinks)).
		Msg("services wired")
	return nil
}
