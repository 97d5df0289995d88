// Package jsonio loads transcript sources and exports the built index as
// JSON, in the shapes the published site consumes.
package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/haru/episcope/internal/ports"
)

// TranscriptGlob matches transcript files inside the source directory.
const TranscriptGlob = "*.txt.md"

// LoadTranscripts reads every transcript in dir. The first line of a file is
// the raw title, cleaned at the first " - " separator; the remaining lines
// are the content, trimmed. Files are visited in sorted name order so the
// corpus order is stable across runs. Empty files are skipped.
func LoadTranscripts(dir string) (*ports.Corpus, error) {
	paths, err := filepath.Glob(filepath.Join(dir, TranscriptGlob))
	if err != nil {
		return nil, fmt.Errorf("glob transcripts: %w", err)
	}
	sort.Strings(paths)

	corpus := &ports.Corpus{}
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		doc, ok := parseTranscript(filepath.Base(path), string(data))
		if !ok {
			continue
		}
		corpus.Add(doc)
	}
	return corpus, nil
}

// ModTimes returns the unix mtime of every transcript in dir, keyed by
// filename. Used to decide which cached analyses are still valid.
func ModTimes(dir string) (map[string]int64, error) {
	paths, err := filepath.Glob(filepath.Join(dir, TranscriptGlob))
	if err != nil {
		return nil, fmt.Errorf("glob transcripts: %w", err)
	}
	stamps := make(map[string]int64, len(paths))
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		stamps[filepath.Base(path)] = info.ModTime().Unix()
	}
	return stamps, nil
}

// parseTranscript splits raw file text into title and content.
func parseTranscript(id, raw string) (ports.Document, bool) {
	lines := strings.Split(raw, "\n")
	if len(lines) == 0 || strings.TrimSpace(raw) == "" {
		return ports.Document{}, false
	}
	rawTitle := strings.TrimSpace(lines[0])
	title, _, _ := strings.Cut(rawTitle, " - ")
	content := strings.TrimSpace(strings.Join(lines[1:], "\n"))
	return ports.Document{ID: id, Title: title, Content: content}, true
}

// curatedFile is the on-disk shape of keywords.json.
type curatedFile struct {
	Keywords []struct {
		Keyword string `json:"keyword"`
	} `json:"keywords"`
}

// LoadCuratedKeywords reads the curated keyword list. A missing file is not
// an error: the analyzer runs fine on extracted candidates alone.
func LoadCuratedKeywords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var f curatedFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	var out []string
	seen := make(map[string]bool)
	for _, k := range f.Keywords {
		if k.Keyword != "" && !seen[k.Keyword] {
			seen[k.Keyword] = true
			out = append(out, k.Keyword)
		}
	}
	return out, nil
}
