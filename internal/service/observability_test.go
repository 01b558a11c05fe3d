package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/stretchr/testify/assert"
)

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(observability.NewLogger(observability.LogConfig{
		Level: "debug", Format: "json", Output: &buf,
	}))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name:     "ask",
		Duration: 3 * time.Millisecond,
		Success:  true,
		Fields:   map[string]any{"kind": "answer"},
	})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{
		Name: "import_logs",
		Err:  errors.New("disk full"),
	})

	out := buf.String()
	assert.Contains(t, out, `"use_case":"ask"`)
	assert.Contains(t, out, `"kind":"answer"`)
	assert.Contains(t, out, `"duration_ms":3`)
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"error":"disk full"`)
}

func TestLogUseCaseObserver_NilLogger(t *testing.T) {
	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
