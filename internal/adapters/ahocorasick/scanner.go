// Package ahocorasick implements ports.PatternScanner using an Aho-Corasick
// automaton. It wraps the petar-dambovaliev/aho-corasick library for
// O(n + m + z) multi-keyword matching.
package ahocorasick

import (
	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/haru/episcope/internal/ports"
)

// Scanner implements ports.PatternScanner. Two automatons are compiled from
// the same pattern slice: one with leftmost-longest semantics for winning
// spans, one with standard semantics for overlapping occurrence scans.
// The pattern set is fixed for the scanner's lifetime.
type Scanner struct {
	longest  aho.AhoCorasick // leftmost-longest, non-overlapping
	standard aho.AhoCorasick // standard, supports overlapping iteration
	patterns []string
}

// NewScanner compiles a scanner from the given patterns. Empty pattern
// strings are skipped; pattern order is preserved otherwise. A scanner with
// zero patterns is valid and matches nothing.
func NewScanner(patterns []string) *Scanner {
	p := make([]string, 0, len(patterns))
	for _, pat := range patterns {
		if pat != "" {
			p = append(p, pat)
		}
	}

	longestBuilder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.LeftMostLongestMatch,
		DFA:       true,
	})
	standardBuilder := aho.NewAhoCorasickBuilder(aho.Opts{
		MatchKind: aho.StandardMatch,
		DFA:       true,
	})
	return &Scanner{
		longest:  longestBuilder.Build(p),
		standard: standardBuilder.Build(p),
		patterns: p,
	}
}

// Scan returns non-overlapping leftmost-longest matches in content, ordered
// by start offset.
func (s *Scanner) Scan(content string) []ports.ScanMatch {
	if len(s.patterns) == 0 || content == "" {
		return nil
	}
	found := s.longest.FindAll(content)
	if len(found) == 0 {
		return nil
	}
	matches := make([]ports.ScanMatch, 0, len(found))
	for i := range found {
		matches = append(matches, ports.ScanMatch{
			Pattern: found[i].Pattern(),
			Start:   found[i].Start(),
			End:     found[i].End(),
		})
	}
	return matches
}

// ScanOverlapping returns every occurrence of every pattern in content,
// ordered by end offset.
func (s *Scanner) ScanOverlapping(content string) []ports.ScanMatch {
	if len(s.patterns) == 0 || content == "" {
		return nil
	}
	iter := s.standard.IterOverlapping(content)
	var matches []ports.ScanMatch
	for next := iter.Next(); next != nil; next = iter.Next() {
		m := *next
		matches = append(matches, ports.ScanMatch{
			Pattern: m.Pattern(),
			Start:   m.Start(),
			End:     m.End(),
		})
	}
	return matches
}

// Pattern returns the pattern string at the given index.
func (s *Scanner) Pattern(idx int) string {
	if idx < 0 || idx >= len(s.patterns) {
		return ""
	}
	return s.patterns[idx]
}

// PatternCount returns the number of patterns in the scanner.
func (s *Scanner) PatternCount() int {
	return len(s.patterns)
}
