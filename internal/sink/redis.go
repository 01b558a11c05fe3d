package sink

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	unansweredKey = "unanswered"
	feedbackKey   = "feedback"
)

// RedisConfig holds the connection settings for RedisSink.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// listPusher is the slice of the redis client RedisSink needs.
type listPusher interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
}

// RedisSink appends JSON records to two Redis lists, "<prefix>unanswered"
// and "<prefix>feedback", for downstream curation workers.
type RedisSink struct {
	client listPusher
	closer func() error
	prefix string
}

// NewRedisSink connects to Redis and verifies the connection.
func NewRedisSink(cfg RedisConfig) (*RedisSink, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	s := newRedisSink(client, cfg.Prefix)
	s.closer = client.Close
	return s, nil
}

func newRedisSink(client listPusher, prefix string) *RedisSink {
	if prefix == "" {
		prefix = "faqbot:"
	}
	return &RedisSink{client: client, prefix: prefix, closer: func() error { return nil }}
}

// unansweredRecord and feedbackRecord are the JSON payloads pushed to Redis.
type unansweredRecord struct {
	ID      string    `json:"id"`
	Query   string    `json:"query"`
	AskedAt time.Time `json:"asked_at"`
}

type feedbackRecord struct {
	ID         string    `json:"id"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Helpful    bool      `json:"helpful"`
	RecordedAt time.Time `json:"recorded_at"`
}

func (s *RedisSink) RecordUnanswered(ctx context.Context, q domain.UnansweredQuestion) error {
	return s.push(ctx, unansweredKey, unansweredRecord{ID: q.ID, Query: q.Query, AskedAt: q.AskedAt})
}

func (s *RedisSink) RecordFeedback(ctx context.Context, f domain.Feedback) error {
	return s.push(ctx, feedbackKey, feedbackRecord{
		ID:         f.ID,
		Question:   f.Question,
		Answer:     f.Answer,
		Helpful:    f.Helpful,
		RecordedAt: f.RecordedAt,
	})
}

// Key returns the full list key for a record kind.
func (s *RedisSink) Key(kind string) string {
	return s.prefix + kind
}

// Close closes the Redis connection.
func (s *RedisSink) Close() error {
	return s.closer()
}

func (s *RedisSink) push(ctx context.Context, kind string, record any) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal %s record: %w", kind, err)
	}
	if err := s.client.RPush(ctx, s.Key(kind), data).Err(); err != nil {
		return fmt.Errorf("redis rpush %s: %w", kind, err)
	}
	return nil
}
