package todo

import (
	"sort"

	"github.com/ghfeed/ghfeed/internal/github"
)

// Entry is one row of the merged todo board: remote facts overlaid
// with the locally owned status and notes.
type Entry struct {
	Key    Key
	Title  string
	URL    string
	Status Status
	Notes  string

	// Tracked marks entries that exist only in local storage — items
	// closed remotely or tracked by hand — rendered from cached fields.
	Tracked bool
}

// Group holds the entries for one status.
type Group struct {
	Status  Status
	Entries []Entry
}

// MergeForDisplay overlays stored annotations onto the remote assigned
// view and groups the result by status in the fixed order in-progress,
// blocked, review, backlog. Remote items keep their view order; keys
// present only in storage are appended as manually tracked entries in
// key order. Remote data is never mutated.
func MergeForDisplay(assigned []github.Item, st *Storage) []Group {
	byStatus := make(map[Status][]Entry)
	seen := make(map[string]bool, len(assigned))

	for _, it := range assigned {
		key := KeyForItem(it)
		seen[key.String()] = true

		status := StatusBacklog
		notes := ""
		if a, ok := st.Issues[key.String()]; ok {
			if a.Status != "" {
				status = a.Status
			}
			notes = a.Notes
		}

		byStatus[status] = append(byStatus[status], Entry{
			Key:    key,
			Title:  it.Title,
			URL:    it.HTMLURL,
			Status: status,
			Notes:  notes,
		})
	}

	var trackedKeys []string
	for ks := range st.Issues {
		if !seen[ks] {
			trackedKeys = append(trackedKeys, ks)
		}
	}
	sort.Strings(trackedKeys)

	for _, ks := range trackedKeys {
		key, err := ParseKey(ks)
		if err != nil {
			continue
		}
		a := st.Issues[ks]

		status := a.Status
		if status == "" {
			status = StatusBacklog
		}

		byStatus[status] = append(byStatus[status], Entry{
			Key:     key,
			Title:   a.CachedTitle,
			URL:     a.CachedURL,
			Status:  status,
			Notes:   a.Notes,
			Tracked: true,
		})
	}

	groups := make([]Group, 0, len(GroupOrder))
	for _, status := range GroupOrder {
		if entries := byStatus[status]; len(entries) > 0 {
			groups = append(groups, Group{Status: status, Entries: entries})
		}
	}
	return groups
}
