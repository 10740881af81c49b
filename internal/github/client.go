package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v68/github"
)

// SearchFunc executes one search query against the remote API.
// The default implementation calls the GitHub search endpoint via
// go-github. Tests can inject a fake.
type SearchFunc func(ctx context.Context, query string) ([]Item, error)

type listLabelsFunc func(ctx context.Context, owner, repo string, number int) ([]string, error)

type replaceLabelsFunc func(ctx context.Context, owner, repo string, number int, labels []string) error

type notificationsFunc func(ctx context.Context) ([]Item, error)

// Client wraps the GitHub API and caches the authenticated username.
// All remote calls go through injectable function fields so tests can
// substitute canned responses.
type Client struct {
	username string
	gh       *gh.Client

	search        SearchFunc
	listLabels    listLabelsFunc
	replaceLabels replaceLabelsFunc
	notifications notificationsFunc
}

// NewClient authenticates against the GitHub API with the given token
// and caches the current user.
func NewClient(ctx context.Context, token string) (*Client, error) {
	if token == "" {
		return nil, errors.New("no GitHub token: set \"token\" in the config file or export GITHUB_TOKEN")
	}

	c := &Client{gh: gh.NewClient(nil).WithAuthToken(token)}
	c.search = c.searchItems
	c.listLabels = c.listIssueLabels
	c.replaceLabels = c.replaceIssueLabels
	c.notifications = c.fetchNotifications

	user, _, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get authenticated user: %w", toTransportError(err))
	}
	c.username = user.GetLogin()
	return c, nil
}

// NewTestClient creates a Client with a custom SearchFunc for testing.
func NewTestClient(username string, search SearchFunc) *Client {
	return &Client{username: username, search: search}
}

// Username returns the login of the authenticated user.
func (c *Client) Username() string {
	return c.username
}

// Search executes one free-form search query. The query grammar is
// GitHub's; callers compose the strings and treat them as opaque here.
func (c *Client) Search(ctx context.Context, query string) ([]Item, error) {
	return c.search(ctx, query)
}

// Notifications returns the user's notification threads as items,
// carrying the reason reported by the notifications API.
func (c *Client) Notifications(ctx context.Context) ([]Item, error) {
	return c.notifications(ctx)
}

// TransportError reports a non-success response from the remote API.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("github: status %d: %s", e.StatusCode, e.Body)
}

// toTransportError converts go-github error responses into
// *TransportError. Other errors (network, context cancellation) pass
// through unchanged.
func toTransportError(err error) error {
	var er *gh.ErrorResponse
	if errors.As(err, &er) {
		status := 0
		if er.Response != nil {
			status = er.Response.StatusCode
		}
		return &TransportError{StatusCode: status, Body: er.Message}
	}
	return err
}
