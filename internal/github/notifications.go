package github

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	gh "github.com/google/go-github/v68/github"
)

// fetchNotifications lists unread notification threads and decodes
// them into Items. The thread ID serves as the item ID and the API's
// reason field is carried through for prioritization.
func (c *Client) fetchNotifications(ctx context.Context) ([]Item, error) {
	opts := &gh.NotificationListOptions{
		ListOptions: gh.ListOptions{PerPage: 50},
	}

	notifications, _, err := c.gh.Activity.ListNotifications(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", toTransportError(err))
	}

	items := make([]Item, 0, len(notifications))
	for _, n := range notifications {
		full := n.GetRepository().GetFullName()
		owner, name, ok := strings.Cut(full, "/")
		if !ok {
			continue
		}

		kind := KindIssue
		if n.GetSubject().GetType() == "PullRequest" {
			kind = KindPullRequest
		}

		url, number := subjectHTMLURL(n.GetSubject().GetURL())

		items = append(items, Item{
			ID:      n.GetID(),
			Number:  number,
			Title:   n.GetSubject().GetTitle(),
			HTMLURL: url,
			Repo:    Repo{Owner: owner, Name: name, FullName: full},
			Kind:    kind,
			Reason:  n.GetReason(),
		})
	}

	return items, nil
}

// subjectHTMLURL converts a notification subject API URL like
// "https://api.github.com/repos/owner/repo/pulls/42" into the public
// web URL and extracts the item number. Returns the input unchanged
// (and number 0) when the URL doesn't match that shape.
func subjectHTMLURL(apiURL string) (string, int) {
	number := 0
	if idx := strings.LastIndex(apiURL, "/"); idx >= 0 {
		if n, err := strconv.Atoi(apiURL[idx+1:]); err == nil {
			number = n
		}
	}

	url := strings.Replace(apiURL, "api.github.com/repos/", "github.com/", 1)
	url = strings.Replace(url, "/pulls/", "/pull/", 1)
	return url, number
}
