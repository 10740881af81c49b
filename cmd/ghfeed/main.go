package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"github.com/ghfeed/ghfeed/internal/config"
	"github.com/ghfeed/ghfeed/internal/feed"
	"github.com/ghfeed/ghfeed/internal/github"
	"github.com/ghfeed/ghfeed/internal/notify"
	"github.com/ghfeed/ghfeed/internal/todo"
	"github.com/ghfeed/ghfeed/internal/ui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		limit       int
		todoMode    bool
		updateKey   string
		statusFlag  string
		noteFlag    string
		pushRemote  bool
		notifyMode  bool
		interactive bool
		showVersion bool
	)

	flag.IntVarP(&limit, "limit", "l", 0, "cap items shown per section (0 = config default)")
	flag.BoolVarP(&todoMode, "todo", "t", false, "render the todo board instead of the listing")
	flag.StringVarP(&updateKey, "update", "u", "", "update a tracked issue (owner/repo#number)")
	flag.StringVar(&statusFlag, "status", "", "status to set with --update (backlog|in-progress|blocked|review)")
	flag.StringVar(&noteFlag, "note", "", "note to append with --update")
	flag.BoolVar(&pushRemote, "push", false, "with --update --status, also push a status:<value> label")
	flag.BoolVarP(&notifyMode, "notify", "n", false, "send a desktop-notification summary of the feed")
	flag.BoolVarP(&interactive, "interactive", "i", false, "browse the review queue interactively")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("ghfeed %s (commit: %s, built: %s)\n", version, commit, date)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	if updateKey != "" {
		os.Exit(runUpdate(cfg, updateKey, statusFlag, noteFlag, pushRemote))
	}

	org, err := cfg.ResolveOrganization(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	ctx := context.Background()
	client, err := github.NewClient(ctx, cfg.ResolveToken())
	if err != nil {
		fatal(err)
	}
	agg := feed.NewAggregator(client, cfg.DoneWindowDays)

	switch {
	case interactive:
		os.Exit(runInteractive(agg, cfg, org))
	case notifyMode:
		os.Exit(runNotify(ctx, client, cfg))
	case todoMode:
		os.Exit(runTodo(ctx, agg, cfg, org))
	default:
		if limit == 0 {
			limit = cfg.ListLimit
		}
		os.Exit(runListing(ctx, agg, cfg, org, limit))
	}
}

// runListing renders the full listing: all five views, with the review
// queue prioritized.
func runListing(ctx context.Context, agg *feed.Aggregator, cfg *config.Config, org string, limit int) int {
	vs, err := agg.BuildViews(ctx, org, cfg.Teams)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.RenderError(err))
		return 1
	}
	vs.ToReview = feed.Prioritize(vs.ToReview, cfg.WorkPrefixes())

	enrichCache(cfg, vs.Assigned)

	fmt.Print(ui.RenderViews(vs, limit))
	return 0
}

// runTodo renders the merged todo board for the assigned view.
func runTodo(ctx context.Context, agg *feed.Aggregator, cfg *config.Config, org string) int {
	vs, err := agg.BuildViews(ctx, org, cfg.Teams)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.RenderError(err))
		return 1
	}

	enrichCache(cfg, vs.Assigned)

	store := todo.NewStore(cfg.TodoPath())
	groups := todo.MergeForDisplay(vs.Assigned, store.Load())
	fmt.Print(ui.RenderTodoBoard(groups))
	return 0
}

// runNotify sends a desktop-notification summary of the prioritized
// notification feed and prints it.
func runNotify(ctx context.Context, client *github.Client, cfg *config.Config) int {
	items, err := client.Notifications(ctx)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.RenderError(err))
		return 1
	}
	items = feed.Prioritize(items, cfg.WorkPrefixes())

	fmt.Print(ui.RenderFeed(items, cfg.FeedLimit))
	if len(items) == 0 {
		return 0
	}

	title := fmt.Sprintf("ghfeed: %d items waiting", len(items))
	if err := notify.Send(title, ui.SummaryBody(items, cfg.FeedLimit)); err != nil {
		fmt.Fprintf(os.Stderr, "warning: desktop notification failed: %v\n", err)
	}
	return 0
}

// runInteractive starts the feed browser on the prioritized review queue.
func runInteractive(agg *feed.Aggregator, cfg *config.Config, org string) int {
	load := func(ctx context.Context) ([]github.Item, error) {
		vs, err := agg.BuildViews(ctx, org, cfg.Teams)
		if err != nil {
			return nil, err
		}
		return feed.Prioritize(vs.ToReview, cfg.WorkPrefixes()), nil
	}

	p := tea.NewProgram(ui.NewBrowser(load), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprint(os.Stderr, ui.RenderError(err))
		return 1
	}
	return 0
}

// runUpdate applies a status and/or note update to one tracked issue.
// A remote label push failure never blocks the local write; the two
// outcomes are reported independently.
func runUpdate(cfg *config.Config, keyStr, statusStr, note string, pushRemote bool) int {
	if statusStr == "" && note == "" {
		fmt.Fprintln(os.Stderr, "Error: --update needs --status and/or --note")
		return 1
	}

	key, err := todo.ParseKey(keyStr)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.RenderError(err))
		return 1
	}

	var status todo.Status
	if statusStr != "" {
		status, err = todo.ParseStatus(statusStr)
		if err != nil {
			fmt.Fprint(os.Stderr, ui.RenderError(err))
			return 1
		}
	}

	if pushRemote && status != "" {
		ctx := context.Background()
		client, err := github.NewClient(ctx, cfg.ResolveToken())
		if err == nil {
			err = client.SetLabelStatus(ctx, key.Owner, key.Repo, key.Number, string(status))
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: remote status push failed, keeping local update: %v\n", err)
		} else {
			fmt.Printf("pushed status:%s to %s\n", status, key)
		}
	}

	store := todo.NewStore(cfg.TodoPath())
	storage := store.Load()

	now := time.Now()
	if status != "" {
		storage.SetStatus(key, status, now)
	}
	if note != "" {
		storage.AppendNote(key, note, now)
	}

	if err := store.Save(storage); err != nil {
		fmt.Fprint(os.Stderr, ui.RenderError(err))
		return 1
	}

	a := storage.Issues[key.String()]
	fmt.Printf("%s: status=%s\n", key, a.Status)
	return 0
}

func fatal(err error) {
	fmt.Fprint(os.Stderr, ui.RenderError(err))
	os.Exit(1)
}

// enrichCache refreshes cached titles/URLs for annotations whose items
// are present in the current remote view. Best effort: a failed save
// only warns.
func enrichCache(cfg *config.Config, assigned []github.Item) {
	store := todo.NewStore(cfg.TodoPath())
	storage := store.Load()

	changed := false
	for _, it := range assigned {
		key := todo.KeyForItem(it)
		if _, ok := storage.Issues[key.String()]; ok {
			storage.CacheRemoteFields(key, it.Title, it.HTMLURL)
			changed = true
		}
	}
	if !changed {
		return
	}
	if err := store.Save(storage); err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not refresh cached titles: %v\n", err)
	}
}
