package feed

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ghfeed/ghfeed/internal/github"
)

// ErrNoOrganization means no usable organization context could be
// resolved for the run.
var ErrNoOrganization = errors.New("no organization configured")

// DefaultDoneWindowDays is how far back the done view looks for
// recently closed assigned items.
const DefaultDoneWindowDays = 7

// Searcher is the remote fetcher boundary consumed by the aggregator.
// *github.Client implements it.
type Searcher interface {
	Username() string
	Search(ctx context.Context, query string) ([]github.Item, error)
}

// Aggregator builds the named views for one run.
type Aggregator struct {
	client     Searcher
	doneWindow time.Duration
	now        func() time.Time
}

// NewAggregator creates an Aggregator. doneWindowDays <= 0 falls back
// to DefaultDoneWindowDays.
func NewAggregator(client Searcher, doneWindowDays int) *Aggregator {
	if doneWindowDays <= 0 {
		doneWindowDays = DefaultDoneWindowDays
	}
	return &Aggregator{
		client:     client,
		doneWindow: time.Duration(doneWindowDays) * 24 * time.Hour,
		now:        time.Now,
	}
}

// BuildViews issues the queries for one organization and assembles the
// result. The five personal queries are independent and read-only, so
// they fan out concurrently, each into its own slice; the first
// failure aborts the run. Team review queries run one at a time
// afterwards — a single team's failure drops that team's results, not
// the whole run.
func (a *Aggregator) BuildViews(ctx context.Context, org string, teams []string) (*github.ViewSet, error) {
	if org == "" {
		return nil, ErrNoOrganization
	}

	user := a.client.Username()
	since := a.now().Add(-a.doneWindow)

	var personal, assigned, done, reviewed, mentioned []github.Item

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		personal, err = a.client.Search(gctx, reviewRequestedQuery(user, org))
		return err
	})
	g.Go(func() error {
		var err error
		assigned, err = a.client.Search(gctx, assignedOpenQuery(user, org))
		return err
	})
	g.Go(func() error {
		var err error
		done, err = a.client.Search(gctx, assignedClosedQuery(user, org, since))
		return err
	})
	g.Go(func() error {
		var err error
		reviewed, err = a.client.Search(gctx, reviewedQuery(user, org))
		return err
	})
	g.Go(func() error {
		var err error
		mentioned, err = a.client.Search(gctx, mentionedQuery(user, org))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var team []github.Item
	for _, t := range teams {
		items, err := a.client.Search(ctx, teamReviewQuery(org, t))
		if err != nil {
			log.Printf("warning: team review query failed for %s/%s: %v", org, t, err)
			continue
		}
		team = append(team, tagReason(items, github.ReasonTeamReviewRequested)...)
	}

	return &github.ViewSet{
		ToReview:  MergeReviews(tagReason(personal, github.ReasonReviewRequested), team),
		Assigned:  tagReason(assigned, github.ReasonAssigned),
		Done:      tagReason(done, github.ReasonAssigned),
		Reviewed:  tagReason(reviewed, github.ReasonReviewed),
		Mentioned: tagReason(mentioned, github.ReasonMentioned),
	}, nil
}

// tagReason stamps every item with the reason implied by the query
// that surfaced it.
func tagReason(items []github.Item, reason string) []github.Item {
	for i := range items {
		items[i].Reason = reason
	}
	return items
}
