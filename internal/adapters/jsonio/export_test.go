package jsonio

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haru/episcope/internal/ports"
)

func TestExport(t *testing.T) {
	corpus := ports.Corpus{}
	corpus.Add(ports.Document{ID: "ep1.txt.md", Title: "Episode 1", Content: "クラウドの話"})
	corpus.Add(ports.Document{ID: "ep2.txt.md", Title: "Episode 2", Content: "also クラウド, plus rust"})
	snap := &ports.Snapshot{
		Corpus: corpus,
		Vocabulary: ports.Vocabulary{
			Keywords: []string{"rust", "クラウド"},
			Episodes: map[string][]string{
				"クラウド": {"ep1.txt.md", "ep2.txt.md"},
				"rust": {"ep2.txt.md"},
			},
			Curated: map[string]bool{"クラウド": true},
		},
	}

	dir := filepath.Join(t.TempDir(), "public")
	require.NoError(t, Export(dir, snap))

	var transcripts map[string]map[string]string
	readJSON(t, filepath.Join(dir, FileTranscripts), &transcripts)
	assert.Equal(t, "Episode 1", transcripts["ep1.txt.md"]["title"])
	assert.Equal(t, "クラウドの話", transcripts["ep1.txt.md"]["content"])

	var keywordToEpisodes map[string][]string
	readJSON(t, filepath.Join(dir, FileKeywordToEpisodes), &keywordToEpisodes)
	assert.Equal(t, []string{"ep1.txt.md", "ep2.txt.md"}, keywordToEpisodes["クラウド"])

	var episodeToKeywords map[string][]string
	readJSON(t, filepath.Join(dir, FileEpisodeToKeywords), &episodeToKeywords)
	assert.Equal(t, []string{"rust", "クラウド"}, episodeToKeywords["ep2.txt.md"], "sorted per episode")

	var curated []string
	readJSON(t, filepath.Join(dir, FileCuratedKeywords), &curated)
	assert.Equal(t, []string{"クラウド"}, curated)
}

func TestExport_EmptySnapshot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "public")
	require.NoError(t, Export(dir, &ports.Snapshot{}))

	var curated []string
	readJSON(t, filepath.Join(dir, FileCuratedKeywords), &curated)
	assert.Empty(t, curated)
}

func readJSON(t *testing.T, path string, into any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, into))
}
