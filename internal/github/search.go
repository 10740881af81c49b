package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// searchItems performs a search query against the GitHub issues search
// endpoint and decodes the results into Items. Kind and labels come
// from the search result itself; the reason is attached later by the
// aggregator based on which query surfaced the item.
func (c *Client) searchItems(ctx context.Context, query string) ([]Item, error) {
	opts := &gh.SearchOptions{
		Sort:  "updated",
		Order: "desc",
		ListOptions: gh.ListOptions{
			PerPage: 100,
		},
	}

	result, _, err := c.gh.Search.Issues(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search failed for query %q: %w", query, toTransportError(err))
	}

	items := make([]Item, 0, len(result.Issues))
	for _, issue := range result.Issues {
		owner, repo := parseRepoURL(issue.GetRepositoryURL())
		if owner == "" {
			continue
		}

		kind := KindIssue
		if issue.IsPullRequest() {
			kind = KindPullRequest
		}

		labels := make([]string, 0, len(issue.Labels))
		for _, l := range issue.Labels {
			labels = append(labels, l.GetName())
		}

		items = append(items, Item{
			ID:      strconv.FormatInt(issue.GetID(), 10),
			Number:  issue.GetNumber(),
			Title:   issue.GetTitle(),
			HTMLURL: issue.GetHTMLURL(),
			Repo:    Repo{Owner: owner, Name: repo, FullName: owner + "/" + repo},
			Kind:    kind,
			Labels:  labels,
		})
	}

	return items, nil
}

// parseRepoURL extracts owner and repo from a repository_url like
// "https://api.github.com/repos/owner/repo".
func parseRepoURL(repoURL string) (string, string) {
	parts := strings.Split(repoURL, "/repos/")
	if len(parts) != 2 {
		return "", ""
	}
	segments := strings.SplitN(parts[1], "/", 2)
	if len(segments) != 2 {
		return "", ""
	}
	return segments[0], segments[1]
}
