package match

import (
	"sort"
)

// DefaultMinScore is the similarity a known key must exceed to be suggested.
const DefaultMinScore = 0.5

// DefaultMaxSuggestions caps the number of suggestions returned.
const DefaultMaxSuggestions = 2

// Candidate is a known key scored against an unknown one.
type Candidate struct {
	Key   string
	Score float64
}

// Rank scores every known key against key and returns those scoring above
// minScore, best first. Ties are broken by key name so output is stable.
func Rank(key string, known []string, minScore float64) []Candidate {
	var out []Candidate

	for _, k := range known {
		score := Similarity(key, k)
		if score <= minScore {
			continue
		}

		out = append(out, Candidate{Key: k, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].Key < out[j].Key
	})

	return out
}

// Suggest returns up to DefaultMaxSuggestions known keys close to key.
func Suggest(key string, known []string) []string {
	ranked := Rank(key, known, DefaultMinScore)
	if len(ranked) > DefaultMaxSuggestions {
		ranked = ranked[:DefaultMaxSuggestions]
	}

	out := make([]string, 0, len(ranked))
	for _, c := range ranked {
		out = append(out, c.Key)
	}

	return out
}
