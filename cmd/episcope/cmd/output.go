package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/haru/episcope/internal/domain/highlight"
	"github.com/haru/episcope/internal/domain/search"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// formatGroups formats grouped search hits for terminal display.
//
//	⚡ 12 hits │ 3 episodes
//	episode title
//	  14: matched line with the query emphasized
//	      previous / next context in gray
func formatGroups(query string, groups []search.Group) string {
	total := 0
	for _, g := range groups {
		total += len(g.Hits)
	}
	if total == 0 {
		return fmt.Sprintf("%s⚡ no hits%s\n", colorBold, colorReset)
	}

	// The query is emphasized as literal text, never as pattern syntax.
	emphasis := regexp.MustCompile(highlight.EscapeLiteral(query))

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d hits%s │ %d episodes\n",
		colorBold, total, colorReset, len(groups)))
	for _, g := range groups {
		sb.WriteString(fmt.Sprintf("%s%s%s\n", colorCyan, g.Title, colorReset))
		for _, h := range g.Hits {
			if h.Before != nil && *h.Before != "" {
				sb.WriteString(fmt.Sprintf("      %s%s%s\n", colorGray, *h.Before, colorReset))
			}
			line := emphasis.ReplaceAllLiteralString(h.Line, colorYellow+query+colorReset)
			sb.WriteString(fmt.Sprintf("  %s%d%s: %s\n", colorGreen, h.LineNumber, colorReset, line))
			if h.After != nil && *h.After != "" {
				sb.WriteString(fmt.Sprintf("      %s%s%s\n", colorGray, *h.After, colorReset))
			}
		}
	}
	return sb.String()
}

// annotate returns content with every resolved span wrapped in ANSI
// highlighting. Gaps between spans pass through untouched.
func annotate(content string, spans []highlight.Span) string {
	if len(spans) == 0 {
		return content
	}
	var sb strings.Builder
	prev := 0
	for _, s := range spans {
		sb.WriteString(content[prev:s.Start])
		sb.WriteString(colorYellow)
		sb.WriteString(content[s.Start:s.End])
		sb.WriteString(colorReset)
		prev = s.End
	}
	sb.WriteString(content[prev:])
	return sb.String()
}
