// Package analyzer builds the keyword vocabulary from a transcript corpus:
// candidate extraction, keyword-to-episode mapping, and the frequency and
// substring filters that keep the vocabulary useful for highlighting.
package analyzer

import "regexp"

// Candidate patterns: Katakana runs of three or more characters, and
// English/numeric words of three or more characters optionally continued by
// space-joined words ("machine learning", "GPT 4").
var (
	katakanaPattern = regexp.MustCompile(`[\x{30A0}-\x{30FF}]{3,}`)
	englishPattern  = regexp.MustCompile(`[a-zA-Z0-9]{3,}(?: [a-zA-Z0-9]+)*`)
)

// ExtractCandidates returns the keyword candidates found in one transcript,
// deduplicated, in first-occurrence order.
func ExtractCandidates(content string) []string {
	if content == "" {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, pat := range []*regexp.Regexp{katakanaPattern, englishPattern} {
		for _, m := range pat.FindAllString(content, -1) {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}
