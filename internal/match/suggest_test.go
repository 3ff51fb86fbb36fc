package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var knownKeys = []string{"src", "caption", "width", "height"}

func TestSuggest(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want []string
	}{
		{name: "transposition", key: "captoin", want: []string{"caption"}},
		{name: "case and separator", key: "Wid_th", want: []string{"width"}},
		{name: "typo", key: "heigth", want: []string{"height"}},
		{name: "swapped letters", key: "widht", want: []string{"width"}},
		{name: "unrelated", key: "border", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.key, knownKeys))
		})
	}
}

func TestRank_OrderIsStable(t *testing.T) {
	ranked := Rank("ab", []string{"abd", "abc", "zz"}, 0.5)

	require.Len(t, ranked, 2)
	assert.Equal(t, "abc", ranked[0].Key)
	assert.Equal(t, "abd", ranked[1].Key)
	assert.InDelta(t, ranked[0].Score, ranked[1].Score, 1e-9)
}

func TestRank_ExcludesScoreAtMinimum(t *testing.T) {
	// "heigth" and "width" are three edits apart over six runes.
	assert.InDelta(t, 0.5, Similarity("heigth", "width"), 1e-9)
	assert.Empty(t, Rank("heigth", []string{"width"}, 0.5))

	ranked := Rank("heigth", knownKeys, DefaultMinScore)
	require.Len(t, ranked, 1)
	assert.Equal(t, "height", ranked[0].Key)
}
