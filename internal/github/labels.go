package github

import (
	"context"
	"fmt"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

const statusLabelPrefix = "status:"

// SetLabelStatus pushes a status change to the remote issue as a
// label: read the current labels, drop any prior status:* label,
// append status:<value>, replace the full set. The read-modify-write
// is not atomic on the remote side; a concurrent label change on the
// same issue can be lost. Callers treat failure as non-fatal to the
// local annotation update.
func (c *Client) SetLabelStatus(ctx context.Context, owner, repo string, number int, status string) error {
	current, err := c.listLabels(ctx, owner, repo, number)
	if err != nil {
		return fmt.Errorf("failed to read labels for %s/%s#%d: %w", owner, repo, number, err)
	}

	next := make([]string, 0, len(current)+1)
	for _, l := range current {
		if strings.HasPrefix(l, statusLabelPrefix) {
			continue
		}
		next = append(next, l)
	}
	next = append(next, statusLabelPrefix+status)

	if err := c.replaceLabels(ctx, owner, repo, number, next); err != nil {
		return fmt.Errorf("failed to replace labels for %s/%s#%d: %w", owner, repo, number, err)
	}
	return nil
}

func (c *Client) listIssueLabels(ctx context.Context, owner, repo string, number int) ([]string, error) {
	labels, _, err := c.gh.Issues.ListLabelsByIssue(ctx, owner, repo, number, &gh.ListOptions{PerPage: 100})
	if err != nil {
		return nil, toTransportError(err)
	}
	names := make([]string, 0, len(labels))
	for _, l := range labels {
		names = append(names, l.GetName())
	}
	return names, nil
}

func (c *Client) replaceIssueLabels(ctx context.Context, owner, repo string, number int, labels []string) error {
	if _, _, err := c.gh.Issues.ReplaceLabelsForIssue(ctx, owner, repo, number, labels); err != nil {
		return toTransportError(err)
	}
	return nil
}
