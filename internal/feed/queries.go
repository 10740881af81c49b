package feed

import (
	"fmt"
	"time"
)

// Search query composition. The grammar belongs to the remote service;
// these helpers only assemble the strings the aggregator needs.

func reviewRequestedQuery(user, org string) string {
	return fmt.Sprintf("is:open is:pr review-requested:%s org:%s archived:false", user, org)
}

func teamReviewQuery(org, team string) string {
	return fmt.Sprintf("is:open is:pr team-review-requested:%s/%s archived:false", org, team)
}

func assignedOpenQuery(user, org string) string {
	return fmt.Sprintf("is:open assignee:%s org:%s archived:false", user, org)
}

func assignedClosedQuery(user, org string, since time.Time) string {
	return fmt.Sprintf("is:closed assignee:%s org:%s closed:>=%s", user, org, since.Format("2006-01-02"))
}

func reviewedQuery(user, org string) string {
	return fmt.Sprintf("is:open is:pr reviewed-by:%s -review-requested:%s org:%s", user, user, org)
}

func mentionedQuery(user, org string) string {
	return fmt.Sprintf("is:open mentions:%s org:%s archived:false", user, org)
}
