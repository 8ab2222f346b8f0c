package view

import (
	"fmt"
	"strings"

	tuitheme "github.com/vtorres/timeline-cli/internal/tui/theme"
)

func Toolbar(drawerOpen bool) string {
	if drawerOpen {
		return "j/k move | space toggle | x clear field | esc close | q quit"
	}
	return "j/k move | enter expand | f filters | F clear filters | o open | y copy link | t time format | r refresh | q quit"
}

func Footer(page, shown, filtered, total, activeFilters int, hasMore bool, th tuitheme.Theme) string {
	more := "end"
	if hasMore {
		more = "more"
	}
	parts := []string{
		th.MetaLabel.Render("page") + " " + th.MetaValue.Render(fmt.Sprintf("%d", page)),
		th.MetaValue.Render(fmt.Sprintf("%d of %d shown", shown, filtered)),
		th.MetaValue.Render(fmt.Sprintf("%d total", total)),
		th.MetaValue.Render(more),
	}
	if activeFilters > 0 {
		parts = append(parts, th.FilterCount.Render(fmt.Sprintf("%d filters", activeFilters)))
	}
	return strings.Join(parts, " • ")
}

func Message(loading bool, status, warning string, th tuitheme.Theme) string {
	state := "idle"
	if loading {
		state = "loading"
	}
	if warning != "" {
		state = "warning"
	}
	main := "Ready"
	if status != "" {
		main = status
	} else if warning != "" {
		main = warning
	}
	stateLabel := th.StateIdle.Render("state")
	switch state {
	case "warning":
		stateLabel = th.StateWarn.Render("state")
	case "loading":
		stateLabel = th.StateLoad.Render("state")
	}
	return fmt.Sprintf("%s: %s | %s", stateLabel, state, th.MetaValue.Render(main))
}
