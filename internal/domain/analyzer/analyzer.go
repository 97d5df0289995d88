package analyzer

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/haru/episcope/internal/ports"
)

// Default filter parameters, matching the published index.
const (
	DefaultMinEpisodes  = 2    // keep keywords in strictly more episodes
	DefaultMaxShare     = 0.8  // drop keywords in >= 80% of episodes
	DefaultSimilarShare = 0.05 // coverage-diff threshold for substring removal
	DefaultWorkers      = 4
)

// Analyzer turns a corpus plus keyword candidates into a Vocabulary.
// NewScanner is the pattern-scanner factory (wired to the Aho-Corasick
// adapter); per-document scans fan out on a worker pool since the corpus
// can hold hundreds of long transcripts.
type Analyzer struct {
	NewScanner   func(patterns []string) ports.PatternScanner
	Workers      int
	MinEpisodes  int
	MaxShare     float64
	SimilarShare float64
}

// New returns an analyzer with default filter parameters.
func New(newScanner func(patterns []string) ports.PatternScanner) *Analyzer {
	return &Analyzer{
		NewScanner:   newScanner,
		Workers:      DefaultWorkers,
		MinEpisodes:  DefaultMinEpisodes,
		MaxShare:     DefaultMaxShare,
		SimilarShare: DefaultSimilarShare,
	}
}

// Build maps every candidate, chunker phrase, and curated keyword to the
// episodes containing it, applies the frequency, substring, and short-noun
// filters, and returns the snapshot. Curated keywords join the candidate
// pool and are flagged in the resulting vocabulary; the filters treat them
// like any other keyword.
func (a *Analyzer) Build(corpus *ports.Corpus, candidates []string, phrases map[string][]string, curated []string) (*ports.Snapshot, error) {
	// Union, curated first, then extracted candidates, then phrase
	// surfaces in sorted order, preserving first occurrence.
	surfaces := make([]string, 0, len(phrases))
	for kw := range phrases {
		surfaces = append(surfaces, kw)
	}
	sort.Strings(surfaces)

	seen := make(map[string]bool)
	var pool []string
	for _, list := range [][]string{curated, candidates, surfaces} {
		for _, kw := range list {
			if kw != "" && !seen[kw] {
				seen[kw] = true
				pool = append(pool, kw)
			}
		}
	}

	episodes, err := a.mapKeywords(corpus, pool)
	if err != nil {
		return nil, err
	}

	episodes = filterByFrequency(episodes, corpus.Len(), a.MinEpisodes, a.MaxShare)
	episodes = filterSubstrings(episodes, corpus.Len(), a.SimilarShare)
	episodes = filterShortNouns(episodes, phrases)

	keywords := make([]string, 0, len(episodes))
	for kw := range episodes {
		keywords = append(keywords, kw)
	}
	sort.Strings(keywords)

	curatedSet := make(map[string]bool)
	for _, kw := range curated {
		if _, ok := episodes[kw]; ok {
			curatedSet[kw] = true
		}
	}

	return &ports.Snapshot{
		Corpus: *corpus,
		Vocabulary: ports.Vocabulary{
			Keywords: keywords,
			Episodes: episodes,
			Curated:  curatedSet,
		},
		BuiltAt: time.Now().Unix(),
	}, nil
}

// mapKeywords scans every document for keyword occurrences and returns
// keyword -> episode IDs, episode lists in corpus order. One scanner is
// shared across workers; per-document results are merged after the pool
// drains so the output does not depend on scheduling.
func (a *Analyzer) mapKeywords(corpus *ports.Corpus, keywords []string) (map[string][]string, error) {
	found := make([]map[int]bool, corpus.Len())
	if len(keywords) == 0 || corpus.Len() == 0 {
		return map[string][]string{}, nil
	}

	scanner := a.NewScanner(keywords)

	workers := a.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	p, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("analyzer pool: %w", err)
	}
	defer p.Release()

	var wg sync.WaitGroup
	for i, id := range corpus.IDs {
		i, doc := i, corpus.Docs[id]
		wg.Add(1)
		submitErr := p.Submit(func() {
			defer wg.Done()
			hits := make(map[int]bool)
			// Overlapping scan: "AI" still counts in an episode even when
			// every occurrence sits inside "AI safety".
			for _, m := range scanner.ScanOverlapping(doc.Content) {
				hits[m.Pattern] = true
			}
			found[i] = hits
		})
		if submitErr != nil {
			wg.Done()
			return nil, fmt.Errorf("analyzer submit: %w", submitErr)
		}
	}
	wg.Wait()

	episodes := make(map[string][]string)
	for i, id := range corpus.IDs {
		for pat := range found[i] {
			kw := scanner.Pattern(pat)
			episodes[kw] = append(episodes[kw], id)
		}
	}
	return episodes, nil
}
