// Package bbolt implements ports.Storage using bbolt (embedded B+ tree).
// The snapshot and the analysis cache live in separate top-level buckets,
// JSON-serialized. Writes are transactional — a crash mid-write cannot
// corrupt previously committed data.
package bbolt

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/haru/episcope/internal/ports"
)

// Bucket and key names
var (
	bucketSnapshot = []byte("snapshot")
	bucketCache    = []byte("cache")
	keyCorpus      = []byte("corpus")
	keyVocabulary  = []byte("vocabulary")
	keyBuiltAt     = []byte("built_at")
)

// Store implements ports.Storage backed by a single bbolt database file.
type Store struct {
	db *bolt.DB
}

// NewStore opens (or creates) a bbolt database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveSnapshot persists the full snapshot, overwriting any prior one.
func (s *Store) SaveSnapshot(snap *ports.Snapshot) error {
	if snap == nil {
		return fmt.Errorf("nil snapshot")
	}
	corpusJSON, err := json.Marshal(snap.Corpus)
	if err != nil {
		return fmt.Errorf("marshal corpus: %w", err)
	}
	vocabJSON, err := json.Marshal(snap.Vocabulary)
	if err != nil {
		return fmt.Errorf("marshal vocabulary: %w", err)
	}
	builtJSON, err := json.Marshal(snap.BuiltAt)
	if err != nil {
		return fmt.Errorf("marshal built_at: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(bucketSnapshot)
		if err != nil {
			return err
		}
		if err := b.Put(keyCorpus, corpusJSON); err != nil {
			return err
		}
		if err := b.Put(keyVocabulary, vocabJSON); err != nil {
			return err
		}
		return b.Put(keyBuiltAt, builtJSON)
	})
}

// LoadSnapshot retrieves the snapshot. Returns nil, nil if none exists.
func (s *Store) LoadSnapshot() (*ports.Snapshot, error) {
	var corpusJSON, vocabJSON, builtJSON []byte

	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketSnapshot)
		if b == nil {
			return nil
		}
		// Copy bytes out of the transaction (bbolt slices are only valid within tx)
		if v := b.Get(keyCorpus); v != nil {
			corpusJSON = append([]byte(nil), v...)
		}
		if v := b.Get(keyVocabulary); v != nil {
			vocabJSON = append([]byte(nil), v...)
		}
		if v := b.Get(keyBuiltAt); v != nil {
			builtJSON = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if corpusJSON == nil {
		return nil, nil
	}

	snap := &ports.Snapshot{}
	if err := json.Unmarshal(corpusJSON, &snap.Corpus); err != nil {
		return nil, fmt.Errorf("unmarshal corpus: %w", err)
	}
	if vocabJSON != nil {
		if err := json.Unmarshal(vocabJSON, &snap.Vocabulary); err != nil {
			return nil, fmt.Errorf("unmarshal vocabulary: %w", err)
		}
	}
	if builtJSON != nil {
		if err := json.Unmarshal(builtJSON, &snap.BuiltAt); err != nil {
			return nil, fmt.Errorf("unmarshal built_at: %w", err)
		}
	}
	return snap, nil
}

// SaveCache persists the analysis cache, one entry per transcript file.
func (s *Store) SaveCache(cache map[string]ports.DocCache) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketCache); err != nil && err != bolt.ErrBucketNotFound {
			return err
		}
		b, err := tx.CreateBucket(bucketCache)
		if err != nil {
			return err
		}
		for id, entry := range cache {
			data, err := json.Marshal(entry)
			if err != nil {
				return fmt.Errorf("marshal cache %q: %w", id, err)
			}
			if err := b.Put([]byte(id), data); err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadCache retrieves the analysis cache. Returns an empty map if none exists.
func (s *Store) LoadCache() (map[string]ports.DocCache, error) {
	cache := make(map[string]ports.DocCache)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketCache)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var entry ports.DocCache
			if err := json.Unmarshal(v, &entry); err != nil {
				return fmt.Errorf("unmarshal cache %q: %w", k, err)
			}
			cache[string(k)] = entry
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return cache, nil
}
