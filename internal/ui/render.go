// Package ui renders the aggregated views, the todo board, and the
// notification feed, and hosts the interactive feed browser.
package ui

import (
	"fmt"
	"strings"

	"github.com/ghfeed/ghfeed/internal/github"
	"github.com/ghfeed/ghfeed/internal/todo"
)

// RenderViews renders the full listing: every named view as a section.
// limit caps the items shown per section; 0 means unlimited.
func RenderViews(vs *github.ViewSet, limit int) string {
	var b strings.Builder

	renderSection(&b, "To Review", vs.ToReview, limit)
	renderSection(&b, "Assigned", vs.Assigned, limit)
	renderSection(&b, "Mentioned", vs.Mentioned, limit)
	renderSection(&b, "Reviewed", vs.Reviewed, limit)
	renderSection(&b, "Done", vs.Done, limit)

	return b.String()
}

func renderSection(b *strings.Builder, name string, items []github.Item, limit int) {
	fmt.Fprintf(b, "%s\n", sectionHeaderStyle.Render(fmt.Sprintf("%s (%d)", name, len(items))))
	if len(items) == 0 {
		fmt.Fprintf(b, "%s\n\n", renderEmptyState("nothing here"))
		return
	}

	shown := items
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, it := range shown {
		fmt.Fprintf(b, "  %s %s %s\n", kindBadge(it.Kind == github.KindPullRequest),
			itemTitleStyle.Render(fmt.Sprintf("#%d %s", it.Number, it.Title)),
			itemMetaStyle.Render("· "+it.Repo.FullName))
		fmt.Fprintf(b, "     %s\n", itemURLStyle.Render(it.HTMLURL))
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		fmt.Fprintf(b, "  %s\n", itemMetaStyle.Render(fmt.Sprintf("… and %d more", hidden)))
	}
	b.WriteString("\n")
}

// RenderTodoBoard renders the merged todo board grouped by status.
func RenderTodoBoard(groups []todo.Group) string {
	if len(groups) == 0 {
		return renderEmptyState("nothing tracked") + "\n"
	}

	var b strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&b, "%s\n", statusBadge(g.Status))
		for _, e := range g.Entries {
			title := e.Title
			if title == "" {
				title = "(no cached title)"
			}
			line := fmt.Sprintf("  %s %s", itemTitleStyle.Render(title), itemMetaStyle.Render("· "+e.Key.String()))
			if e.Tracked {
				line += " " + trackedStyle.Render("[tracked]")
			}
			b.WriteString(line + "\n")
			if e.URL != "" {
				fmt.Fprintf(&b, "     %s\n", itemURLStyle.Render(e.URL))
			}
			if e.Notes != "" {
				for _, noteLine := range strings.Split(e.Notes, "\n") {
					fmt.Fprintf(&b, "%s\n", noteStyle.Render(noteLine))
				}
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// RenderFeed renders the prioritized notification feed.
func RenderFeed(items []github.Item, limit int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", sectionHeaderStyle.Render(fmt.Sprintf("Feed (%d)", len(items))))
	if len(items) == 0 {
		return b.String() + renderEmptyState("all caught up") + "\n"
	}

	shown := items
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, it := range shown {
		fmt.Fprintf(&b, "  %s %s %s\n", kindBadge(it.Kind == github.KindPullRequest),
			itemTitleStyle.Render(it.Title),
			itemMetaStyle.Render(fmt.Sprintf("· %s · %s", it.Repo.FullName, it.Reason)))
	}
	return b.String()
}

// SummaryBody builds the plain-text body for a desktop notification:
// one line per item, capped at limit.
func SummaryBody(items []github.Item, limit int) string {
	shown := items
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	lines := make([]string, 0, len(shown))
	for _, it := range shown {
		lines = append(lines, fmt.Sprintf("%s (%s)", it.Title, it.Repo.FullName))
	}
	if hidden := len(items) - len(shown); hidden > 0 {
		lines = append(lines, fmt.Sprintf("… and %d more", hidden))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders a fatal error for the terminal.
func RenderError(err error) string {
	return errorStyle.Render("Error: "+err.Error()) + "\n"
}
