package ports

// Snapshot is the complete built index: the immutable corpus plus the
// keyword vocabulary derived from it. It is what the analyzer produces and
// what every query command loads.
type Snapshot struct {
	Corpus     Corpus     `json:"corpus"`
	Vocabulary Vocabulary `json:"vocabulary"`
	BuiltAt    int64      `json:"built_at"` // unix seconds
}

// DocCache records the last analysis of one transcript file so unchanged
// files are skipped on re-analysis. Candidates are the regex-extracted
// keyword candidates and Phrases the parser-generated chunk surfaces (with
// the chunk tags each surfaced as) for the file at ModTime.
type DocCache struct {
	ModTime    int64               `json:"mtime"` // unix seconds of the source file
	Candidates []string            `json:"candidates"`
	Phrases    map[string][]string `json:"phrases,omitempty"`
}

// Storage persists the snapshot and the per-file analysis cache to durable
// storage. The backing store (bbolt) is transactional: a crash mid-write
// must not corrupt previously committed data. Concurrent reads are safe;
// writes are serialized by the adapter.
type Storage interface {
	// SaveSnapshot persists the full snapshot, overwriting any prior one.
	SaveSnapshot(snap *Snapshot) error

	// LoadSnapshot retrieves the snapshot. Returns nil, nil if none exists.
	LoadSnapshot() (*Snapshot, error)

	// SaveCache persists the analysis cache, overwriting any prior cache.
	SaveCache(cache map[string]DocCache) error

	// LoadCache retrieves the analysis cache. Returns an empty map if none
	// exists.
	LoadCache() (map[string]DocCache, error)

	// Close releases the underlying database.
	Close() error
}
