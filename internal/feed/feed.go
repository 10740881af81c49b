// Package feed merges, deduplicates, and prioritizes the work items
// fetched from the remote source.
package feed

import (
	"sort"
	"strings"

	"github.com/ghfeed/ghfeed/internal/github"
)

// workOrgBoost is added to an item's score when its repository lives
// under a configured work organization.
const workOrgBoost = 30

// MergeReviews combines personal and team review requests into a
// single list. Personal items come first and win: a team item whose ID
// was already seen is dropped, so a personal review request always
// outranks a team request for the same item.
func MergeReviews(personal, team []github.Item) []github.Item {
	merged := make([]github.Item, 0, len(personal)+len(team))
	seen := make(map[string]bool, len(personal))

	for _, it := range personal {
		if seen[it.ID] {
			continue
		}
		merged = append(merged, it)
		seen[it.ID] = true
	}
	for _, it := range team {
		if seen[it.ID] {
			continue
		}
		merged = append(merged, it)
		seen[it.ID] = true
	}
	return merged
}

// Prioritize returns the items reordered by descending score. Ties
// break on kind (pull requests before issues), then ascending
// repository full name; remaining ties keep their input order.
func Prioritize(items []github.Item, workOrgs []string) []github.Item {
	out := make([]github.Item, len(items))
	copy(out, items)

	sort.SliceStable(out, func(i, j int) bool {
		si, sj := score(out[i], workOrgs), score(out[j], workOrgs)
		if si != sj {
			return si > sj
		}
		if out[i].Kind != out[j].Kind {
			return out[i].Kind == github.KindPullRequest
		}
		return out[i].Repo.FullName < out[j].Repo.FullName
	})
	return out
}

func score(it github.Item, workOrgs []string) int {
	s := reasonWeight(it.Reason)
	for _, org := range workOrgs {
		if org != "" && strings.HasPrefix(it.Repo.FullName, org) {
			s += workOrgBoost
			break
		}
	}
	return s
}

// reasonWeight maps a reason to its priority weight. Reasons come from
// two places with different spellings — the aggregator's query tags
// (hyphenated) and the notifications API (underscored) — so the lookup
// normalizes hyphens first.
func reasonWeight(reason string) int {
	switch strings.ReplaceAll(reason, "-", "_") {
	case "review_requested":
		return 10
	case "mention", "mentioned":
		return 9
	case "team_mention", "team_review_requested":
		return 8
	case "assign", "assigned":
		return 7
	case "subscribed":
		return 5
	case "author":
		return 4
	case "comment":
		return 3
	default:
		return 1
	}
}
