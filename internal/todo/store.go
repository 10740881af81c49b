// Package todo owns the locally persisted tracking annotations layered
// onto remote work items: a status and an append-only note history per
// issue key. The remote source never sees the notes.
package todo

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
)

// Annotation is the locally owned, per-key mutable record.
type Annotation struct {
	Status      Status    `json:"status"`
	Notes       string    `json:"notes,omitempty"`
	LastUpdated time.Time `json:"lastUpdated"`
	CachedTitle string    `json:"cachedTitle,omitempty"`
	CachedURL   string    `json:"cachedUrl,omitempty"`
}

// Storage is the full persisted local state, keyed by "owner/repo#123".
// Unknown fields in a loaded record are ignored for forward
// compatibility; a missing issues map is treated as empty.
type Storage struct {
	Issues map[string]*Annotation `json:"issues"`
}

// Store reads and writes the persisted storage file. The file is read
// entirely, mutated in memory, and rewritten entirely on each update;
// a single active writer is assumed.
type Store struct {
	path string
}

// NewStore creates a Store persisting to the given path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted state. A missing, unreadable, or corrupt
// file yields empty storage rather than an error: losing stale local
// notes is preferable to blocking the tool.
func (s *Store) Load() *Storage {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: cannot read todo file %s, starting empty: %v", s.path, err)
		}
		return &Storage{Issues: map[string]*Annotation{}}
	}

	var st Storage
	if err := json.Unmarshal(data, &st); err != nil {
		log.Printf("warning: corrupt todo file %s, starting empty: %v", s.path, err)
		return &Storage{Issues: map[string]*Annotation{}}
	}
	if st.Issues == nil {
		st.Issues = map[string]*Annotation{}
	}
	return &st
}

// Save persists the full mapping with a write-then-rename so a crash
// mid-write cannot truncate the file.
func (s *Store) Save(st *Storage) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create todo directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal todo storage: %w", err)
	}

	if err := atomic.WriteFile(s.path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write todo file: %w", err)
	}
	return nil
}

// ensure returns the annotation for key, creating a backlog record on
// first use.
func (st *Storage) ensure(key Key) *Annotation {
	if st.Issues == nil {
		st.Issues = map[string]*Annotation{}
	}
	a, ok := st.Issues[key.String()]
	if !ok {
		a = &Annotation{Status: StatusBacklog}
		st.Issues[key.String()] = a
	}
	return a
}

// AppendNote adds a timestamped note entry. Existing note text is
// never replaced or truncated, only grown.
func (st *Storage) AppendNote(key Key, note string, ts time.Time) *Annotation {
	a := st.ensure(key)

	entry := "[" + ts.UTC().Format("2006-01-02") + "] " + note
	if a.Notes == "" {
		a.Notes = entry
	} else {
		a.Notes += "\n\n" + entry
	}
	a.LastUpdated = ts
	return a
}

// SetStatus overwrites the status only, leaving notes untouched.
func (st *Storage) SetStatus(key Key, status Status, ts time.Time) *Annotation {
	a := st.ensure(key)
	a.Status = status
	a.LastUpdated = ts
	return a
}

// CacheRemoteFields stores best-effort copies of remote title and URL
// on an existing annotation, used for display after the item drops out
// of the live remote view. It never creates records and never writes
// empty values over known ones.
func (st *Storage) CacheRemoteFields(key Key, title, url string) {
	a, ok := st.Issues[key.String()]
	if !ok {
		return
	}
	if title != "" {
		a.CachedTitle = title
	}
	if url != "" {
		a.CachedURL = url
	}
}
