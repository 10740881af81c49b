package todo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

var testKey = Key{Owner: "acme", Repo: "api", Number: 7}

func tempStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "todo.json"))
}

func TestLoad_MissingFile(t *testing.T) {
	st := tempStore(t).Load()
	if st == nil || st.Issues == nil {
		t.Fatal("Load must return usable empty storage")
	}
	if len(st.Issues) != 0 {
		t.Errorf("got %d annotations, want 0", len(st.Issues))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path).Load()
	if len(st.Issues) != 0 {
		t.Errorf("corrupt file must load as empty, got %d annotations", len(st.Issues))
	}
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	data := `{"issues": {}, "schemaVersion": 3, "lastSync": "2026-01-01"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path).Load()
	if len(st.Issues) != 0 {
		t.Errorf("got %d annotations, want 0", len(st.Issues))
	}
}

func TestLoad_MissingIssuesMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	st := NewStore(path).Load()
	if st.Issues == nil {
		t.Fatal("missing issues map must be treated as empty, not nil")
	}
}

func TestAppendNote_CreatesBacklogRecord(t *testing.T) {
	st := &Storage{}
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

	a := st.AppendNote(testKey, "waiting on upstream fix", ts)

	if a.Status != StatusBacklog {
		t.Errorf("Status = %q, want backlog", a.Status)
	}
	if a.Notes != "[2026-03-14] waiting on upstream fix" {
		t.Errorf("Notes = %q", a.Notes)
	}
	if !a.LastUpdated.Equal(ts) {
		t.Errorf("LastUpdated = %v, want %v", a.LastUpdated, ts)
	}
}

func TestAppendNote_NeverShrinks(t *testing.T) {
	st := &Storage{}
	ts1 := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	ts2 := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)

	st.AppendNote(testKey, "first note", ts1)
	before := len(st.Issues[testKey.String()].Notes)
	a := st.AppendNote(testKey, "second note", ts2)

	if len(a.Notes) <= before {
		t.Fatalf("notes shrank: %d -> %d", before, len(a.Notes))
	}
	for _, want := range []string{"[2026-03-14] first note", "[2026-03-15] second note"} {
		if !strings.Contains(a.Notes, want) {
			t.Errorf("Notes %q missing entry %q", a.Notes, want)
		}
	}
	if !strings.Contains(a.Notes, "\n\n") {
		t.Errorf("entries must be separated by a blank line, got %q", a.Notes)
	}
}

func TestSetStatus_LeavesNotesUntouched(t *testing.T) {
	st := &Storage{}
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	st.AppendNote(testKey, "some context", ts)

	a := st.SetStatus(testKey, StatusBlocked, ts.Add(time.Hour))

	if a.Status != StatusBlocked {
		t.Errorf("Status = %q, want blocked", a.Status)
	}
	if a.Notes != "[2026-03-14] some context" {
		t.Errorf("Notes changed: %q", a.Notes)
	}
	if !a.LastUpdated.Equal(ts.Add(time.Hour)) {
		t.Errorf("LastUpdated = %v", a.LastUpdated)
	}
}

func TestCacheRemoteFields(t *testing.T) {
	st := &Storage{}
	ts := time.Now()

	// No annotation yet: enrichment must not invent one.
	st.CacheRemoteFields(testKey, "Title", "https://example.test/7")
	if len(st.Issues) != 0 {
		t.Fatal("CacheRemoteFields created an annotation")
	}

	st.SetStatus(testKey, StatusInProgress, ts)
	st.CacheRemoteFields(testKey, "Fix the frobnicator", "https://github.com/acme/api/issues/7")

	a := st.Issues[testKey.String()]
	if a.CachedTitle != "Fix the frobnicator" {
		t.Errorf("CachedTitle = %q", a.CachedTitle)
	}
	if a.CachedURL != "https://github.com/acme/api/issues/7" {
		t.Errorf("CachedURL = %q", a.CachedURL)
	}

	// Empty values never overwrite known ones.
	st.CacheRemoteFields(testKey, "", "")
	if a.CachedTitle == "" || a.CachedURL == "" {
		t.Error("empty remote fields overwrote cached values")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store := tempStore(t)
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	st := &Storage{}
	st.SetStatus(testKey, StatusReview, ts)
	st.AppendNote(testKey, "ready for another look", ts)
	st.CacheRemoteFields(testKey, "Fix the frobnicator", "https://github.com/acme/api/issues/7")

	if err := store.Save(st); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded := store.Load()
	a, ok := loaded.Issues[testKey.String()]
	if !ok {
		t.Fatalf("annotation for %s missing after reload", testKey)
	}
	if a.Status != StatusReview {
		t.Errorf("Status = %q, want review", a.Status)
	}
	if !strings.Contains(a.Notes, "ready for another look") {
		t.Errorf("Notes = %q", a.Notes)
	}
	if a.CachedTitle != "Fix the frobnicator" {
		t.Errorf("CachedTitle = %q", a.CachedTitle)
	}
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "todo.json")
	store := NewStore(path)

	if err := store.Save(&Storage{Issues: map[string]*Annotation{}}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("todo file not written: %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"backlog", "in-progress", "blocked", "review"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Errorf("ParseStatus(%q) unexpected error: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "done", "IN-PROGRESS", "in_progress"} {
		if _, err := ParseStatus(invalid); err == nil {
			t.Errorf("ParseStatus(%q) expected an error", invalid)
		}
	}
}
