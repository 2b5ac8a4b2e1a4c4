// Package recordcache keeps fetched Pokémon records on disk, one JSON file
// per (id, language).
package recordcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aalvaropc/pokedex/internal/domain"
	"github.com/aalvaropc/pokedex/internal/ports"
)

const schemaVersion = 1

type entry struct {
	Version   int            `json:"version"`
	Language  int            `json:"language"`
	FetchedAt time.Time      `json:"fetched_at"`
	Pokemon   domain.Pokemon `json:"pokemon"`
}

type JSONStore struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

type Option func(*JSONStore)

// WithTTL makes entries older than ttl behave as misses. Zero keeps entries forever.
func WithTTL(ttl time.Duration) Option {
	return func(s *JSONStore) { s.ttl = ttl }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(dir string, opts ...Option) *JSONStore {
	s := &JSONStore{
		dir: dir,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.RecordStore = (*JSONStore)(nil)

func (s *JSONStore) path(id int, lang domain.LanguageID) string {
	return filepath.Join(s.dir, fmt.Sprintf("%03d_lang%d.json", id, int(lang)))
}

func (s *JSONStore) Load(id int, lang domain.LanguageID) (domain.Pokemon, bool, error) {
	path := s.path(id, lang)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Pokemon{}, false, nil
		}
		return domain.Pokemon{}, false, &domain.OpError{
			Op:   "recordcache.read",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return domain.Pokemon{}, false, &domain.OpError{
			Op:   "recordcache.decode",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	if e.Version != schemaVersion || e.Pokemon.ID != id || e.Language != int(lang) {
		return domain.Pokemon{}, false, nil
	}
	if s.ttl > 0 && s.now().Sub(e.FetchedAt) > s.ttl {
		return domain.Pokemon{}, false, nil
	}
	return e.Pokemon, true, nil
}

func (s *JSONStore) Save(p domain.Pokemon, lang domain.LanguageID) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &domain.OpError{
			Op:   "recordcache.mkdir",
			Kind: domain.KindExecution,
			Path: s.dir,
			Err:  err,
		}
	}

	path := s.path(p.ID, lang)
	b, err := json.MarshalIndent(entry{
		Version:   schemaVersion,
		Language:  int(lang),
		FetchedAt: s.now().UTC(),
		Pokemon:   p,
	}, "", "  ")
	if err != nil {
		return &domain.OpError{
			Op:   "recordcache.marshal",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{
			Op:   "recordcache.write",
			Kind: domain.KindExecution,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{
			Op:   "recordcache.rename",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
