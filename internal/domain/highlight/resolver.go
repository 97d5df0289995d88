package highlight

import (
	"github.com/haru/episcope/internal/ports"
)

// Span is a resolved, non-overlapping text region [Start, End) within a
// document's content. Keywords holds every vocabulary keyword realized at
// the span, the winning (longest, covering) keyword first; the remainder
// are keywords contained inside the matched text, in first-occurrence order.
type Span struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Keywords []string `json:"keywords"`
}

// Text returns the matched substring of content.
func (s Span) Text(content string) string {
	return content[s.Start:s.End]
}

// Resolver computes keyword spans for transcript display. The vocabulary is
// fixed at construction (it never changes during a resolution pass); spans
// are recomputed per call and never stored.
type Resolver struct {
	scanner ports.PatternScanner
}

// NewResolver creates a resolver over the given pattern scanner. The
// scanner's pattern set is the vocabulary, in its original iteration order.
func NewResolver(scanner ports.PatternScanner) *Resolver {
	return &Resolver{scanner: scanner}
}

// Resolve returns the conflict-resolved span sequence for content, in
// left-to-right order. Scanning is leftmost-longest: the earliest-starting
// keyword occurrence wins, and among occurrences starting at the same
// offset the longest keyword wins, so a short keyword never shadows a
// longer keyword that contains it. Winning spans never overlap.
//
// Empty content or an empty vocabulary produce no spans; Resolve never
// fails.
func (r *Resolver) Resolve(content string) []Span {
	if content == "" || r.scanner.PatternCount() == 0 {
		return nil
	}

	winners := r.scanner.Scan(content)
	if len(winners) == 0 {
		return nil
	}

	// One overlapping pass finds every keyword occurrence, including those
	// nested inside winning spans. Matches are ordered by end offset, which
	// is first-occurrence order within any single span.
	nested := r.scanner.ScanOverlapping(content)

	spans := make([]Span, 0, len(winners))
	ni := 0
	for _, w := range winners {
		span := Span{Start: w.Start, End: w.End}
		span.Keywords = append(span.Keywords, r.scanner.Pattern(w.Pattern))

		// Collect distinct keywords whose occurrences fall entirely inside
		// the span, winner first.
		for ni < len(nested) && nested[ni].End <= w.End {
			m := nested[ni]
			ni++
			if m.Start < w.Start || m.Pattern == w.Pattern {
				continue
			}
			kw := r.scanner.Pattern(m.Pattern)
			if !contains(span.Keywords, kw) {
				span.Keywords = append(span.Keywords, kw)
			}
		}
		spans = append(spans, span)
	}
	return spans
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
