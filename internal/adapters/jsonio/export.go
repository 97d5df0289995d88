package jsonio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/haru/episcope/internal/ports"
)

// Export file names, matching the published site's data files.
const (
	FileTranscripts       = "transcripts.json"
	FileKeywordToEpisodes = "keyword_to_episodes.json"
	FileEpisodeToKeywords = "episode_to_keywords.json"
	FileCuratedKeywords   = "json_source_keywords.json"
)

// Export writes the snapshot to dir as the four site JSON files:
// transcripts (id -> {title, content}), keyword -> episode IDs, episode ->
// sorted keywords, and the curated keywords that survived filtering.
func Export(dir string, snap *ports.Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	transcripts := make(map[string]map[string]string, snap.Corpus.Len())
	for _, id := range snap.Corpus.IDs {
		doc := snap.Corpus.Docs[id]
		transcripts[id] = map[string]string{
			"title":   doc.Title,
			"content": doc.Content,
		}
	}

	episodeToKeywords := make(map[string][]string)
	for kw, eps := range snap.Vocabulary.Episodes {
		for _, id := range eps {
			episodeToKeywords[id] = append(episodeToKeywords[id], kw)
		}
	}
	for id := range episodeToKeywords {
		sort.Strings(episodeToKeywords[id])
	}

	curated := make([]string, 0, len(snap.Vocabulary.Curated))
	for kw := range snap.Vocabulary.Curated {
		curated = append(curated, kw)
	}
	sort.Strings(curated)

	files := map[string]any{
		FileTranscripts:       transcripts,
		FileKeywordToEpisodes: snap.Vocabulary.Episodes,
		FileEpisodeToKeywords: episodeToKeywords,
		FileCuratedKeywords:   curated,
	}
	for name, payload := range files {
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}
