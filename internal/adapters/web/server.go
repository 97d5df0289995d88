// Package web serves the episcope JSON API over localhost HTTP. Rendering
// is the consumer's concern; the API returns plain data records.
package web

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/haru/episcope/internal/app"
	"github.com/haru/episcope/internal/domain/highlight"
	"github.com/haru/episcope/internal/domain/search"
	"github.com/haru/episcope/internal/ports"
)

// Server exposes App queries as a JSON API bound to 127.0.0.1.
type Server struct {
	app      *app.App
	listener net.Listener
	httpSrv  *http.Server
	port     int
	started  time.Time
	stopOnce sync.Once
}

// NewServer creates an HTTP server over the given app.
func NewServer(a *app.App) *Server {
	return &Server{app: a}
}

// Start begins listening on the given port (0 picks a free one).
func (s *Server) Start(port int) error {
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	s.listener = ln
	s.port = ln.Addr().(*net.TCPAddr).Port
	s.started = time.Now()

	s.httpSrv = &http.Server{Handler: s.Handler()}
	go s.httpSrv.Serve(ln)
	return nil
}

// Handler returns the API route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/episodes", s.handleEpisodes)
	mux.HandleFunc("GET /api/episodes/{id}", s.handleEpisode)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/keywords", s.handleKeywords)
	mux.HandleFunc("GET /api/related", s.handleRelated)
	return mux
}

// Port returns the bound port (valid after Start).
func (s *Server) Port() int { return s.port }

// Stop shuts the server down. Safe to call multiple times.
func (s *Server) Stop() {
	s.stopOnce.Do(func() {
		if s.httpSrv != nil {
			s.httpSrv.Close()
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	snap := s.app.Snapshot()
	resp := map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	}
	if snap != nil {
		resp["episodes"] = snap.Corpus.Len()
		resp["keywords"] = len(snap.Vocabulary.Keywords)
	}
	writeJSON(w, http.StatusOK, resp)
}

// episodeSummary is the list-view record: identity only, no content.
type episodeSummary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (s *Server) handleEpisodes(w http.ResponseWriter, r *http.Request) {
	snap := s.app.Snapshot()
	if snap == nil {
		writeJSON(w, http.StatusOK, []episodeSummary{})
		return
	}
	out := make([]episodeSummary, 0, snap.Corpus.Len())
	for _, id := range snap.Corpus.IDs {
		out = append(out, episodeSummary{ID: id, Title: snap.Corpus.Docs[id].Title})
	}
	writeJSON(w, http.StatusOK, out)
}

// episodeDetail carries the transcript plus its resolved keyword spans; the
// client decides how to render the annotation.
type episodeDetail struct {
	ports.Document
	Spans []highlight.Span `json:"spans"`
}

func (s *Server) handleEpisode(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	doc, spans, ok := s.app.Episode(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown episode: " + id})
		return
	}
	writeJSON(w, http.StatusOK, episodeDetail{Document: doc, Spans: spans})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query parameter q"})
		return
	}
	groups := s.app.Search(query)
	if groups == nil {
		groups = []search.Group{}
	}
	writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleKeywords(w http.ResponseWriter, r *http.Request) {
	keywords := s.app.Keywords()
	if keywords == nil {
		keywords = []app.KeywordInfo{}
	}
	writeJSON(w, http.StatusOK, keywords)
}

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	keyword := r.URL.Query().Get("keyword")
	if keyword == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query parameter keyword"})
		return
	}
	docs := s.app.Related(keyword)
	out := make([]episodeSummary, 0, len(docs))
	for _, d := range docs {
		out = append(out, episodeSummary{ID: d.ID, Title: d.Title})
	}
	writeJSON(w, http.StatusOK, out)
}
