package sink

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/faqbot/internal/domain"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2025, 6, 1, 14, 30, 5, 0, time.Local)

func readLines(t *testing.T, fs afero.Fs, path string) []string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestFileSink_AppendsUnanswered(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := NewFileSink(mem, "unanswered_questions.log", "feedback.log")
	ctx := context.Background()

	require.NoError(t, s.RecordUnanswered(ctx, domain.UnansweredQuestion{Query: "xyz123 nonsense", AskedAt: testTime}))
	require.NoError(t, s.RecordUnanswered(ctx, domain.UnansweredQuestion{Query: "gift cards", AskedAt: testTime.Add(time.Minute)}))

	assert.Equal(t, []string{
		"[2025-06-01 14:30:05] xyz123 nonsense",
		"[2025-06-01 14:31:05] gift cards",
	}, readLines(t, mem, "unanswered_questions.log"))

	exists, err := afero.Exists(mem, "feedback.log")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFileSink_AppendsFeedback(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := NewFileSink(mem, "unanswered_questions.log", "feedback.log")

	err := s.RecordFeedback(context.Background(), domain.Feedback{
		Question:   "What time do you open?",
		Answer:     "We open at nine.",
		Helpful:    false,
		RecordedAt: testTime,
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"[2025-06-01 14:30:05] Q: 'What time do you open?' | A: 'We open at nine.' | Helpful: n"},
		readLines(t, mem, "feedback.log"))
}

func TestFileSink_KeepsExistingContent(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "u.log", []byte("[2025-05-01 08:00:00] older\n"), 0o644))
	s := NewFileSink(mem, "u.log", "f.log")

	require.NoError(t, s.RecordUnanswered(context.Background(), domain.UnansweredQuestion{Query: "newer", AskedAt: testTime}))

	assert.Equal(t, []string{"[2025-05-01 08:00:00] older", "[2025-06-01 14:30:05] newer"}, readLines(t, mem, "u.log"))
}

func TestFileSink_OpenError(t *testing.T) {
	s := NewFileSink(afero.NewReadOnlyFs(afero.NewMemMapFs()), "u.log", "f.log")

	err := s.RecordUnanswered(context.Background(), domain.UnansweredQuestion{Query: "x", AskedAt: testTime})
	assert.Error(t, err)
}

func TestFileSink_ConcurrentWritesDoNotInterleave(t *testing.T) {
	mem := afero.NewMemMapFs()
	s := NewFileSink(mem, "u.log", "f.log")
	ctx := context.Background()

	const writers = 20
	const perWriter = 25
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				q := domain.UnansweredQuestion{Query: fmt.Sprintf("writer %d question %d", w, i), AskedAt: testTime}
				assert.NoError(t, s.RecordUnanswered(ctx, q))
			}
		}(w)
	}
	wg.Wait()

	lines := readLines(t, mem, "u.log")
	require.Len(t, lines, writers*perWriter)
	for _, line := range lines {
		q, err := ParseUnansweredLine(line, time.Local)
		require.NoError(t, err, line)
		assert.True(t, strings.HasPrefix(q.Query, "writer "), line)
	}
}
