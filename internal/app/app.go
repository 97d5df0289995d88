// Package app wires adapters and domain logic together: loading and
// rebuilding the snapshot, and answering the queries the CLI and HTTP
// surfaces expose. Queries are pure reads over the immutable snapshot; only
// Rebuild swaps state, behind a lock.
package app

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/haru/episcope/internal/adapters/ahocorasick"
	"github.com/haru/episcope/internal/adapters/jsonio"
	"github.com/haru/episcope/internal/adapters/kagome"
	"github.com/haru/episcope/internal/domain/analyzer"
	"github.com/haru/episcope/internal/domain/chunker"
	"github.com/haru/episcope/internal/domain/highlight"
	"github.com/haru/episcope/internal/domain/search"
	"github.com/haru/episcope/internal/ports"
)

// Config holds application paths and tuning.
type Config struct {
	SourceDir    string // transcript directory
	KeywordsFile string // curated keywords.json (may be absent)
	Workers      int    // analyzer pool size, 0 = default
}

// KeywordInfo is one vocabulary entry for listing surfaces.
type KeywordInfo struct {
	Keyword  string `json:"keyword"`
	Coverage int    `json:"coverage"`
	Curated  bool   `json:"curated,omitempty"`
}

// App is the top-level container. The snapshot and its resolver are
// replaced atomically by Rebuild/SetSnapshot; all queries read the pair
// under the read lock.
type App struct {
	cfg   Config
	store ports.Storage

	mu       sync.RWMutex
	snap     *ports.Snapshot
	resolver *highlight.Resolver

	rebuildMu    sync.Mutex
	rebuildTimer *time.Timer

	tokOnce sync.Once
	tok     ports.Tokenizer
	tokErr  error
}

// New creates an App. The store may be nil for purely in-memory use (tests).
func New(cfg Config, store ports.Storage) *App {
	return &App{cfg: cfg, store: store}
}

// LoadSnapshot loads the persisted snapshot from the store.
// Returns false if the store holds none.
func (a *App) LoadSnapshot() (bool, error) {
	if a.store == nil {
		return false, nil
	}
	snap, err := a.store.LoadSnapshot()
	if err != nil {
		return false, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return false, nil
	}
	a.SetSnapshot(snap)
	return true, nil
}

// SetSnapshot installs a snapshot and its span resolver.
func (a *App) SetSnapshot(snap *ports.Snapshot) {
	resolver := highlight.NewResolver(ahocorasick.NewScanner(snap.Vocabulary.Keywords))
	a.mu.Lock()
	a.snap = snap
	a.resolver = resolver
	a.mu.Unlock()
}

// Snapshot returns the current snapshot, or nil if none is loaded.
func (a *App) Snapshot() *ports.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snap
}

// Rebuild analyzes the source directory from scratch: loads transcripts and
// curated keywords, extracts candidates (reusing the per-file cache for
// unchanged files), builds the vocabulary, persists cache and snapshot, and
// installs the result.
func (a *App) Rebuild() (*ports.Snapshot, error) {
	corpus, err := jsonio.LoadTranscripts(a.cfg.SourceDir)
	if err != nil {
		return nil, err
	}
	if corpus.Len() == 0 {
		return nil, fmt.Errorf("no transcripts found in %s", a.cfg.SourceDir)
	}
	curated, err := jsonio.LoadCuratedKeywords(a.cfg.KeywordsFile)
	if err != nil {
		return nil, err
	}
	stamps, err := jsonio.ModTimes(a.cfg.SourceDir)
	if err != nil {
		return nil, err
	}

	cache := map[string]ports.DocCache{}
	if a.store != nil {
		if cache, err = a.store.LoadCache(); err != nil {
			return nil, fmt.Errorf("load cache: %w", err)
		}
	}

	// Candidate extraction and phrase chunking, cached by mtime.
	newCache := make(map[string]ports.DocCache, corpus.Len())
	seen := make(map[string]bool)
	var candidates []string
	phrases := make(map[string][]string)
	for _, id := range corpus.IDs {
		entry, ok := cache[id]
		if !ok || entry.ModTime != stamps[id] {
			tok, err := a.tokenizer()
			if err != nil {
				return nil, err
			}
			content := corpus.Docs[id].Content
			entry = ports.DocCache{
				ModTime:    stamps[id],
				Candidates: analyzer.ExtractCandidates(content),
				Phrases:    chunker.Phrases(tok.Tokenize(content)),
			}
		}
		newCache[id] = entry
		for _, c := range entry.Candidates {
			if !seen[c] {
				seen[c] = true
				candidates = append(candidates, c)
			}
		}
		for surface, tags := range entry.Phrases {
			phrases[surface] = mergeTags(phrases[surface], tags)
		}
	}

	an := analyzer.New(func(patterns []string) ports.PatternScanner {
		return ahocorasick.NewScanner(patterns)
	})
	if a.cfg.Workers > 0 {
		an.Workers = a.cfg.Workers
	}
	snap, err := an.Build(corpus, candidates, phrases, curated)
	if err != nil {
		return nil, err
	}

	if a.store != nil {
		if err := a.store.SaveCache(newCache); err != nil {
			return nil, fmt.Errorf("save cache: %w", err)
		}
		if err := a.store.SaveSnapshot(snap); err != nil {
			return nil, fmt.Errorf("save snapshot: %w", err)
		}
	}

	a.SetSnapshot(snap)
	return snap, nil
}

// tokenizer builds the morphological tokenizer on first use; the dictionary
// load is too heavy to pay on query-only paths.
func (a *App) tokenizer() (ports.Tokenizer, error) {
	a.tokOnce.Do(func() {
		a.tok, a.tokErr = kagome.NewTokenizer()
	})
	return a.tok, a.tokErr
}

// mergeTags unions two sorted tag lists.
func mergeTags(x, y []string) []string {
	if len(x) == 0 {
		return y
	}
	seen := make(map[string]bool, len(x)+len(y))
	merged := make([]string, 0, len(x)+len(y))
	for _, list := range [][]string{x, y} {
		for _, tag := range list {
			if !seen[tag] {
				seen[tag] = true
				merged = append(merged, tag)
			}
		}
	}
	sort.Strings(merged)
	return merged
}

// Search greps the corpus for query and returns the hits grouped by episode
// title, first-seen order.
func (a *App) Search(query string) []search.Group {
	return search.GroupByTitle(a.Hits(query))
}

// Hits greps the corpus for query, ungrouped.
func (a *App) Hits(query string) []search.Hit {
	a.mu.RLock()
	snap := a.snap
	a.mu.RUnlock()
	if snap == nil {
		return nil
	}
	return search.Grep(query, &snap.Corpus)
}

// Episode returns one document with its resolved keyword spans.
func (a *App) Episode(id string) (ports.Document, []highlight.Span, bool) {
	a.mu.RLock()
	snap, resolver := a.snap, a.resolver
	a.mu.RUnlock()
	if snap == nil {
		return ports.Document{}, nil, false
	}
	doc, ok := snap.Corpus.Docs[id]
	if !ok {
		return ports.Document{}, nil, false
	}
	return doc, resolver.Resolve(doc.Content), true
}

// Keywords lists the vocabulary with coverage counts, in vocabulary order.
func (a *App) Keywords() []KeywordInfo {
	a.mu.RLock()
	snap := a.snap
	a.mu.RUnlock()
	if snap == nil {
		return nil
	}
	out := make([]KeywordInfo, 0, len(snap.Vocabulary.Keywords))
	for _, kw := range snap.Vocabulary.Keywords {
		out = append(out, KeywordInfo{
			Keyword:  kw,
			Coverage: snap.Vocabulary.Coverage(kw),
			Curated:  snap.Vocabulary.Curated[kw],
		})
	}
	return out
}

// Related returns the documents containing keyword, in index order.
func (a *App) Related(keyword string) []ports.Document {
	a.mu.RLock()
	snap := a.snap
	a.mu.RUnlock()
	if snap == nil {
		return nil
	}
	ids := snap.Vocabulary.Related(keyword)
	out := make([]ports.Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := snap.Corpus.Docs[id]; ok {
			out = append(out, doc)
		}
	}
	return out
}

// WatchSource starts watching the source directory and re-analyzes after
// changes settle. Bursts of file events coalesce into one rebuild; rebuilt
// is called with the outcome of each pass.
func (a *App) WatchSource(w ports.Watcher, rebuilt func(*ports.Snapshot, error)) error {
	const quiesce = 500 * time.Millisecond
	return w.Watch(a.cfg.SourceDir, func(string) {
		a.rebuildMu.Lock()
		defer a.rebuildMu.Unlock()
		if a.rebuildTimer != nil {
			a.rebuildTimer.Stop()
		}
		a.rebuildTimer = time.AfterFunc(quiesce, func() {
			snap, err := a.Rebuild()
			if rebuilt != nil {
				rebuilt(snap, err)
			}
		})
	})
}
