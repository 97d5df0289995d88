// Package search implements free-text substring search across the corpus:
// line-level matching with adjacent-line context, and grouping of hits by
// episode. Everything here is a pure computation over immutable inputs.
package search

import (
	"strings"

	"github.com/haru/episcope/internal/ports"
)

// Hit is one line-level substring match. Line is the matched line trimmed of
// leading/trailing whitespace; LineNumber is 1-based within the document.
// Before and After are the trimmed adjacent lines, nil when the match sits
// on the first or last line of the document.
type Hit struct {
	EpisodeID  string  `json:"episode_id"`
	Title      string  `json:"title"`
	Line       string  `json:"line"`
	LineNumber int     `json:"line_number"`
	Before     *string `json:"before,omitempty"`
	After      *string `json:"after,omitempty"`
}

// Grep scans every document in corpus order for lines containing query as a
// literal, case-sensitive substring. Hits are emitted in corpus order, then
// line order within a document. Each document's content is split on newline
// boundaries exactly once per call; empty lines are kept so line numbers
// stay faithful to the source.
//
// An empty query returns no hits — matching every line trivially is
// rejected as degenerate. Grep never fails; a document with empty content
// simply yields nothing.
func Grep(query string, corpus *ports.Corpus) []Hit {
	if query == "" || corpus == nil {
		return nil
	}

	var hits []Hit
	for _, id := range corpus.IDs {
		doc := corpus.Docs[id]
		if doc.Content == "" {
			continue
		}
		lines := strings.Split(doc.Content, "\n")
		for i, line := range lines {
			if !strings.Contains(line, query) {
				continue
			}
			hit := Hit{
				EpisodeID:  doc.ID,
				Title:      doc.Title,
				Line:       strings.TrimSpace(line),
				LineNumber: i + 1,
			}
			if i > 0 {
				before := strings.TrimSpace(lines[i-1])
				hit.Before = &before
			}
			if i < len(lines)-1 {
				after := strings.TrimSpace(lines[i+1])
				hit.After = &after
			}
			hits = append(hits, hit)
		}
	}
	return hits
}
