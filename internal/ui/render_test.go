package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/ghfeed/ghfeed/internal/github"
	"github.com/ghfeed/ghfeed/internal/todo"
)

func sampleItem(number int, title, repoFull string, kind github.Kind, reason string) github.Item {
	return github.Item{
		ID:      title,
		Number:  number,
		Title:   title,
		HTMLURL: "https://github.com/" + repoFull + "/pull/42",
		Repo:    github.Repo{FullName: repoFull},
		Kind:    kind,
		Reason:  reason,
	}
}

func TestRenderViews(t *testing.T) {
	vs := &github.ViewSet{
		ToReview: []github.Item{
			sampleItem(42, "Add frobnicate function", "acme/api", github.KindPullRequest, "review-requested"),
		},
		Assigned: []github.Item{
			sampleItem(7, "Fix the flaky test", "acme/web", github.KindIssue, "assigned"),
		},
	}

	out := RenderViews(vs, 0)

	for _, want := range []string{
		"To Review (1)",
		"#42 Add frobnicate function",
		"Assigned (1)",
		"#7 Fix the flaky test",
		"Mentioned (0)",
		"Reviewed (0)",
		"Done (0)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderViews_Limit(t *testing.T) {
	vs := &github.ViewSet{
		ToReview: []github.Item{
			sampleItem(1, "First", "acme/api", github.KindPullRequest, ""),
			sampleItem(2, "Second", "acme/api", github.KindPullRequest, ""),
			sampleItem(3, "Third", "acme/api", github.KindPullRequest, ""),
		},
	}

	out := RenderViews(vs, 2)

	if !strings.Contains(out, "#1 First") || !strings.Contains(out, "#2 Second") {
		t.Error("limited output missing the first two items")
	}
	if strings.Contains(out, "#3 Third") {
		t.Error("limited output should hide the third item")
	}
	if !strings.Contains(out, "and 1 more") {
		t.Error("limited output missing the hidden-count line")
	}
}

func TestRenderTodoBoard(t *testing.T) {
	ts := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	st := &todo.Storage{}
	key := todo.Key{Owner: "acme", Repo: "api", Number: 9}
	st.SetStatus(key, todo.StatusBlocked, ts)
	st.AppendNote(key, "waiting on infra", ts)
	st.CacheRemoteFields(key, "Migrate the database", "https://github.com/acme/api/issues/9")

	groups := todo.MergeForDisplay(nil, st)
	out := RenderTodoBoard(groups)

	for _, want := range []string{
		"blocked",
		"Migrate the database",
		"acme/api#9",
		"[tracked]",
		"waiting on infra",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderTodoBoard_Empty(t *testing.T) {
	out := RenderTodoBoard(nil)
	if !strings.Contains(out, "nothing tracked") {
		t.Errorf("empty board output = %q", out)
	}
}

func TestRenderFeed(t *testing.T) {
	items := []github.Item{
		sampleItem(1, "Review me", "acme/api", github.KindPullRequest, "review_requested"),
	}

	out := RenderFeed(items, 10)

	for _, want := range []string{"Feed (1)", "Review me", "acme/api", "review_requested"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSummaryBody(t *testing.T) {
	items := []github.Item{
		sampleItem(1, "First", "acme/api", github.KindPullRequest, ""),
		sampleItem(2, "Second", "acme/web", github.KindIssue, ""),
		sampleItem(3, "Third", "acme/infra", github.KindIssue, ""),
	}

	body := SummaryBody(items, 2)

	if !strings.Contains(body, "First (acme/api)") {
		t.Errorf("body missing first line: %q", body)
	}
	if strings.Contains(body, "Third") {
		t.Errorf("body should cap at the limit: %q", body)
	}
	if !strings.Contains(body, "and 1 more") {
		t.Errorf("body missing the hidden-count line: %q", body)
	}
}
