package github

// Repo identifies a GitHub repository.
type Repo struct {
	Owner    string
	Name     string
	FullName string
}

// Kind distinguishes pull requests from plain issues.
type Kind string

const (
	KindPullRequest Kind = "pull-request"
	KindIssue       Kind = "issue"
)

// Reasons the aggregator attaches to items based on which query
// surfaced them. Notification items instead carry the reason reported
// by the notifications API (mention, team_mention, assign, subscribed,
// author, comment, review_requested).
const (
	ReasonReviewRequested     = "review-requested"
	ReasonTeamReviewRequested = "team-review-requested"
	ReasonAssigned            = "assigned"
	ReasonMentioned           = "mentioned"
	ReasonReviewed            = "reviewed"
)

// Item is a work item as reported by the remote source. ID is opaque
// and globally unique within one run: search results use the decimal
// issue ID, notification items the thread ID. Number is only unique
// per repository.
type Item struct {
	ID      string
	Number  int
	Title   string
	HTMLURL string
	Repo    Repo
	Kind    Kind
	Reason  string
	Labels  []string
}

// ViewSet holds the named views built in one aggregation run. It is
// transient: rebuilt on every invocation, never persisted.
type ViewSet struct {
	ToReview  []Item
	Assigned  []Item
	Done      []Item
	Reviewed  []Item
	Mentioned []Item
}
