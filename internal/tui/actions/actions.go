package actions

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtorres/timeline-cli/internal/feed"
	"github.com/vtorres/timeline-cli/internal/registry"
)

type Service interface {
	FetchTimeline(ctx context.Context) ([]registry.Asset, error)
}

type FetchSuccessMsg struct {
	Generation int
	Assets     []registry.Asset
	Duration   time.Duration
	Source     string
}

type FetchErrorMsg struct {
	Generation int
	Err        error
	Duration   time.Duration
	Source     string
}

// AdvanceSettledMsg arrives after the pagination settle delay; the
// model then completes the in-flight page advance.
type AdvanceSettledMsg struct{}

type ClearStatusMsg struct {
	ID int
}

type ShareSuccessMsg struct {
	Status string
}

type ShareErrorMsg struct {
	Err error
}

// FetchCmd runs the one collection fetch. The generation number travels
// with the result so the model can discard completions that were
// superseded by a newer fetch.
func FetchCmd(service Service, generation int, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		start := time.Now()

		assets, err := service.FetchTimeline(ctx)
		if err != nil {
			return FetchErrorMsg{Generation: generation, Err: err, Duration: time.Since(start), Source: source}
		}
		return FetchSuccessMsg{Generation: generation, Assets: assets, Duration: time.Since(start), Source: source}
	}
}

// AdvanceCmd waits out the settle delay before a page advance takes
// effect.
func AdvanceCmd() tea.Cmd {
	return tea.Tick(feed.SettleDelay, func(time.Time) tea.Msg {
		return AdvanceSettledMsg{}
	})
}

func ClearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

func OpenShareCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return ShareSuccessMsg{Status: "Opened asset in browser"}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return ShareSuccessMsg{Status: "Could not open browser, link copied to clipboard"}
			}
		}
		return ShareErrorMsg{Err: fmt.Errorf("could not open or copy asset link")}
	}
}

func CopyShareCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return ShareSuccessMsg{Status: "Asset link copied to clipboard"}
			}
		}
		return ShareErrorMsg{Err: fmt.Errorf("could not copy asset link")}
	}
}
