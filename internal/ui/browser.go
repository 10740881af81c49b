package ui

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ghfeed/ghfeed/internal/github"
)

// FeedLoader fetches the prioritized feed for the browser. Tests and
// main both inject one, keeping the model free of transport concerns.
type FeedLoader func(ctx context.Context) ([]github.Item, error)

// loadState tracks the data-fetch lifecycle.
type loadState int

const (
	stateLoading loadState = iota
	stateLoaded
	stateError
)

// feedLoadedMsg is sent when the feed has been fetched successfully.
type feedLoadedMsg struct {
	items []github.Item
}

// feedErrorMsg is sent when the feed fetch fails.
type feedErrorMsg struct {
	err error
}

// feedEntry adapts a github.Item to the bubbles list.
type feedEntry struct {
	item github.Item
}

func (e feedEntry) Title() string {
	return fmt.Sprintf("#%d %s", e.item.Number, e.item.Title)
}

func (e feedEntry) Description() string {
	return e.item.Repo.FullName + " · " + e.item.Reason
}

func (e feedEntry) FilterValue() string {
	return e.item.Title + " " + e.item.Repo.FullName + " " + e.item.Reason
}

// Browser is the root Bubbletea model for the interactive feed.
type Browser struct {
	list    list.Model
	spinner spinner.Model
	load    FeedLoader

	state  loadState
	errMsg string

	width  int
	height int
}

// NewBrowser creates the interactive feed browser.
func NewBrowser(load FeedLoader) Browser {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Feed"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.FilterInput.Placeholder = "title, repo, reason…"
	l.DisableQuitKeybindings()

	return Browser{
		list:    l,
		spinner: newLoadingSpinner(),
		load:    load,
		state:   stateLoading,
	}
}

func (b Browser) Init() tea.Cmd {
	return tea.Batch(b.spinner.Tick, b.fetchCmd())
}

// fetchCmd loads the feed in a goroutine.
func (b Browser) fetchCmd() tea.Cmd {
	load := b.load
	return func() tea.Msg {
		items, err := load(context.Background())
		if err != nil {
			return feedErrorMsg{err: err}
		}
		return feedLoadedMsg{items: items}
	}
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		b.list.SetSize(msg.Width-2, msg.Height-2)
		return b, nil

	case spinner.TickMsg:
		if b.state == stateLoading {
			var cmd tea.Cmd
			b.spinner, cmd = b.spinner.Update(msg)
			return b, cmd
		}
		return b, nil

	case feedLoadedMsg:
		items := make([]list.Item, len(msg.items))
		for i, it := range msg.items {
			items[i] = feedEntry{item: it}
		}
		b.list.SetItems(items)
		b.state = stateLoaded
		b.errMsg = ""
		return b, nil

	case feedErrorMsg:
		b.state = stateError
		b.errMsg = msg.err.Error()
		return b, nil

	case tea.KeyMsg:
		// While filtering, the inner list owns the keyboard.
		if b.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return b, tea.Quit
		case "r":
			b.state = stateLoading
			b.errMsg = ""
			return b, tea.Batch(b.spinner.Tick, b.fetchCmd())
		case "enter":
			if entry, ok := b.list.SelectedItem().(feedEntry); ok {
				return b, openURLCmd(entry.item.HTMLURL)
			}
			return b, nil
		}
	}

	if b.state == stateLoaded {
		var cmd tea.Cmd
		b.list, cmd = b.list.Update(msg)
		return b, cmd
	}
	return b, nil
}

func (b Browser) View() string {
	switch b.state {
	case stateLoading:
		return lipgloss.NewStyle().Padding(1, 2).Render(b.spinner.View() + " Loading feed...")
	case stateError:
		return lipgloss.NewStyle().Padding(1, 2).Render(
			errorStyle.Render(b.errMsg) + "\n" + itemMetaStyle.Render("Press r to retry, q to quit"))
	default:
		if len(b.list.Items()) == 0 {
			return lipgloss.NewStyle().Padding(1, 2).Render(renderEmptyState("all caught up"))
		}
		return b.list.View()
	}
}

// openURLCmd opens the given URL in the default browser.
func openURLCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if url == "" {
			return nil
		}
		var cmd *exec.Cmd
		switch runtime.GOOS {
		case "darwin":
			cmd = exec.Command("open", url)
		case "windows":
			cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
		default:
			cmd = exec.Command("xdg-open", url)
		}
		_ = cmd.Start()
		return nil
	}
}
