package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchingBlocks(t *testing.T) {
	tests := []struct {
		a, b string
		want []block
	}{
		{"abxcd", "abcd", []block{{0, 0, 2}, {3, 2, 2}, {5, 4, 0}}},
		{"qabxcd", "abycdf", []block{{1, 0, 2}, {4, 3, 2}, {6, 6, 0}}},
		{"", "abc", []block{{0, 3, 0}}},
		{"aaa", "aaa", []block{{0, 0, 3}, {3, 3, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			got := newSequencePair([]rune(tt.a), []rune(tt.b)).matchingBlocks()
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRatio(t *testing.T) {
	assert.InDelta(t, 8.0/9.0, ratio([]rune("abxcd"), []rune("abcd")), 1e-12)
	assert.InDelta(t, 2.0/3.0, ratio([]rune("qabxcd"), []rune("abycdf")), 1e-12)
	assert.Equal(t, 1.0, ratio(nil, nil))
	assert.Equal(t, 0.0, ratio([]rune("abc"), nil))
}
