package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haru/episcope/internal/app"
	"github.com/haru/episcope/internal/ports"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	corpus := ports.Corpus{}
	corpus.Add(ports.Document{
		ID:      "ep1.txt.md",
		Title:   "Episode 1",
		Content: "クラウドネイティブの話\nrust is mentioned here",
	})
	corpus.Add(ports.Document{
		ID:      "ep2.txt.md",
		Title:   "Episode 2",
		Content: "rust again\nand クラウド",
	})

	a := app.New(app.Config{}, nil)
	a.SetSnapshot(&ports.Snapshot{
		Corpus: corpus,
		Vocabulary: ports.Vocabulary{
			Keywords: []string{"rust", "クラウド"},
			Episodes: map[string][]string{
				"rust": {"ep1.txt.md", "ep2.txt.md"},
				"クラウド": {"ep1.txt.md", "ep2.txt.md"},
			},
			Curated: map[string]bool{"クラウド": true},
		},
	})
	return NewServer(a)
}

func getJSON(t *testing.T, srv *Server, url string, into any) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
	return rec.Code
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)
	var resp map[string]any
	code := getJSON(t, srv, "/api/health", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, float64(2), resp["episodes"])
	assert.Equal(t, float64(2), resp["keywords"])
}

func TestServer_Episodes(t *testing.T) {
	srv := newTestServer(t)
	var resp []map[string]string
	code := getJSON(t, srv, "/api/episodes", &resp)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp, 2)
	assert.Equal(t, "ep1.txt.md", resp[0]["id"])
	assert.Equal(t, "Episode 1", resp[0]["title"])
}

func TestServer_EpisodeDetail(t *testing.T) {
	srv := newTestServer(t)
	var resp struct {
		ID      string `json:"id"`
		Content string `json:"content"`
		Spans   []struct {
			Start    int      `json:"start"`
			End      int      `json:"end"`
			Keywords []string `json:"keywords"`
		} `json:"spans"`
	}
	code := getJSON(t, srv, "/api/episodes/ep2.txt.md", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ep2.txt.md", resp.ID)
	require.Len(t, resp.Spans, 2)
	assert.Equal(t, []string{"rust"}, resp.Spans[0].Keywords)
	assert.Equal(t, []string{"クラウド"}, resp.Spans[1].Keywords)
}

func TestServer_EpisodeNotFound(t *testing.T) {
	srv := newTestServer(t)
	var resp map[string]string
	code := getJSON(t, srv, "/api/episodes/missing.txt.md", &resp)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, resp["error"], "missing.txt.md")
}

func TestServer_Search(t *testing.T) {
	srv := newTestServer(t)
	var resp []struct {
		Title string `json:"title"`
		Hits  []struct {
			Line       string `json:"line"`
			LineNumber int    `json:"line_number"`
		} `json:"hits"`
	}
	code := getJSON(t, srv, "/api/search?q=rust", &resp)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp, 2)
	assert.Equal(t, "Episode 1", resp[0].Title)
	assert.Equal(t, 2, resp[0].Hits[0].LineNumber)
	assert.Equal(t, "Episode 2", resp[1].Title)
}

func TestServer_SearchMissingQuery(t *testing.T) {
	srv := newTestServer(t)
	var resp map[string]string
	code := getJSON(t, srv, "/api/search", &resp)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_SearchNoResults(t *testing.T) {
	srv := newTestServer(t)
	var resp []any
	code := getJSON(t, srv, "/api/search?q=nomatch", &resp)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, resp, "empty array, not null")
}

func TestServer_Keywords(t *testing.T) {
	srv := newTestServer(t)
	var resp []struct {
		Keyword  string `json:"keyword"`
		Coverage int    `json:"coverage"`
		Curated  bool   `json:"curated"`
	}
	code := getJSON(t, srv, "/api/keywords", &resp)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp, 2)
	assert.Equal(t, "rust", resp[0].Keyword)
	assert.Equal(t, 2, resp[0].Coverage)
	assert.False(t, resp[0].Curated)
	assert.True(t, resp[1].Curated)
}

func TestServer_Related(t *testing.T) {
	srv := newTestServer(t)
	var resp []map[string]string
	code := getJSON(t, srv, "/api/related?keyword=rust", &resp)
	assert.Equal(t, http.StatusOK, code)
	require.Len(t, resp, 2)
	assert.Equal(t, "ep1.txt.md", resp[0]["id"])
}

func TestServer_RelatedMissingParam(t *testing.T) {
	srv := newTestServer(t)
	var resp map[string]string
	code := getJSON(t, srv, "/api/related", &resp)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_EmptyApp(t *testing.T) {
	srv := NewServer(app.New(app.Config{}, nil))

	var episodes []any
	code := getJSON(t, srv, "/api/episodes", &episodes)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, episodes)

	var health map[string]any
	code = getJSON(t, srv, "/api/health", &health)
	assert.Equal(t, http.StatusOK, code)
	assert.NotContains(t, health, "episodes")
}
