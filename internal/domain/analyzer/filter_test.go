package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterByFrequency(t *testing.T) {
	episodes := map[string][]string{
		"rare":       {"e1"},                           // too rare
		"borderline": {"e1", "e2"},                     // exactly minEpisodes, dropped
		"good":       {"e1", "e2", "e3"},               // kept
		"everywhere": {"e1", "e2", "e3", "e4", "e5"},   // >= 80% of corpus
	}
	kept := filterByFrequency(episodes, 5, 2, 0.8)

	assert.Contains(t, kept, "good")
	assert.NotContains(t, kept, "rare")
	assert.NotContains(t, kept, "borderline")
	assert.NotContains(t, kept, "everywhere")
}

func TestFilterSubstrings_RemovesShadowedShorter(t *testing.T) {
	// "AI" tracks nearly the same episodes as "AI safety": redundant.
	episodes := map[string][]string{
		"AI safety": {"e1", "e2", "e3"},
		"AI":        {"e1", "e2", "e3"},
	}
	kept := filterSubstrings(episodes, 20, 0.05)

	assert.Contains(t, kept, "AI safety")
	assert.NotContains(t, kept, "AI")
}

func TestFilterSubstrings_KeepsIndependentShorter(t *testing.T) {
	// "AI" appears in far more episodes than "AI safety": it carries its
	// own signal and stays.
	episodes := map[string][]string{
		"AI safety": {"e1", "e2", "e3"},
		"AI":        {"e1", "e2", "e3", "e4", "e5", "e6", "e7", "e8"},
	}
	kept := filterSubstrings(episodes, 20, 0.05)

	assert.Contains(t, kept, "AI safety")
	assert.Contains(t, kept, "AI")
}

func TestFilterSubstrings_UnrelatedKeywordsUntouched(t *testing.T) {
	episodes := map[string][]string{
		"alpha": {"e1", "e2", "e3"},
		"beta":  {"e1", "e2", "e3"},
	}
	kept := filterSubstrings(episodes, 20, 0.05)
	assert.Len(t, kept, 2)
}

func TestFilterShortNouns(t *testing.T) {
	episodes := map[string][]string{
		"技術":   {"e1", "e2", "e3"}, // two chars, bare noun: dropped
		"する":   {"e1", "e2", "e3"}, // two chars but chunked as a verb phrase
		"ai":   {"e1", "e2", "e3"}, // two chars, never chunked (regex source)
		"クラウド": {"e1", "e2", "e3"}, // long enough regardless of tags
	}
	phrases := map[string][]string{
		"技術":   {"NP"},
		"する":   {"VP"},
		"クラウド": {"NP"},
	}
	kept := filterShortNouns(episodes, phrases)

	assert.NotContains(t, kept, "技術")
	assert.Contains(t, kept, "する")
	assert.Contains(t, kept, "ai")
	assert.Contains(t, kept, "クラウド")
}

func TestFilterShortNouns_MixedTagsSurvive(t *testing.T) {
	episodes := map[string][]string{"話す": {"e1", "e2", "e3"}}
	phrases := map[string][]string{"話す": {"NP", "VP"}}
	kept := filterShortNouns(episodes, phrases)
	assert.Contains(t, kept, "話す")
}
