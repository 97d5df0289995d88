package analyzer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// filterByFrequency keeps keywords appearing in more than minEpisodes
// episodes but in less than maxShare of the corpus. Too-rare keywords are
// noise; near-universal keywords highlight everything and nothing.
func filterByFrequency(episodes map[string][]string, total int, minEpisodes int, maxShare float64) map[string][]string {
	kept := make(map[string][]string)
	for kw, eps := range episodes {
		n := len(eps)
		if n > minEpisodes && float64(n)/float64(total) < maxShare {
			kept[kw] = eps
		}
	}
	return kept
}

// filterSubstrings removes keywords that are substrings of a longer kept
// keyword with near-identical episode coverage: when "AI" and "AI safety"
// track the same episodes, the shorter one adds nothing. The coverage
// difference threshold is similarShare of the corpus size.
//
// Keywords are visited longest-first so a mid-length keyword removed by a
// longer one no longer removes its own substrings.
func filterSubstrings(episodes map[string][]string, total int, similarShare float64) map[string][]string {
	keywords := make([]string, 0, len(episodes))
	for kw := range episodes {
		keywords = append(keywords, kw)
	}
	sort.Slice(keywords, func(i, j int) bool {
		if len(keywords[i]) != len(keywords[j]) {
			return len(keywords[i]) > len(keywords[j])
		}
		return keywords[i] < keywords[j]
	})

	threshold := float64(total) * similarShare
	removed := make(map[string]bool)
	for _, longer := range keywords {
		if removed[longer] {
			continue
		}
		for _, shorter := range keywords {
			if shorter == longer || removed[shorter] {
				continue
			}
			if len(shorter) >= len(longer) || !strings.Contains(longer, shorter) {
				continue
			}
			diff := len(episodes[longer]) - len(episodes[shorter])
			if diff < 0 {
				diff = -diff
			}
			if float64(diff) <= threshold {
				removed[shorter] = true
			}
		}
	}

	kept := make(map[string][]string, len(episodes)-len(removed))
	for kw, eps := range episodes {
		if !removed[kw] {
			kept[kw] = eps
		}
	}
	return kept
}

// filterShortNouns removes keywords of up to two characters that the
// chunker only ever saw as a bare noun phrase: short standalone nouns are
// near-universally noise, while a short surface that also chunked as a verb
// or adjective phrase, or that the chunker never produced (regex-extracted
// or curated), is kept.
func filterShortNouns(episodes map[string][]string, phrases map[string][]string) map[string][]string {
	kept := make(map[string][]string, len(episodes))
	for kw, eps := range episodes {
		if utf8.RuneCountInString(kw) <= 2 && nounOnly(phrases[kw]) {
			continue
		}
		kept[kw] = eps
	}
	return kept
}

func nounOnly(tags []string) bool {
	if len(tags) == 0 {
		return false
	}
	for _, tag := range tags {
		if tag != "NP" {
			return false
		}
	}
	return true
}
