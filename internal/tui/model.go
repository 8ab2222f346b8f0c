package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vtorres/timeline-cli/internal/app"
	"github.com/vtorres/timeline-cli/internal/feed"
	"github.com/vtorres/timeline-cli/internal/registry"
	"github.com/vtorres/timeline-cli/internal/render/card"
	"github.com/vtorres/timeline-cli/internal/tui/actions"
	"github.com/vtorres/timeline-cli/internal/tui/platform"
	"github.com/vtorres/timeline-cli/internal/tui/state"
	tuitheme "github.com/vtorres/timeline-cli/internal/tui/theme"
	"github.com/vtorres/timeline-cli/internal/tui/view"
)

// nearEndRows is the row-coordinate equivalent of the scroll threshold:
// moving the cursor within this many rows of the revealed window's end
// triggers the next page advance.
const nearEndRows = 3

var dateRangeCycle = []string{"all", "7d", "30d", "90d"}

var sortCycle = []string{feed.SortRecent, feed.SortAlphabetical, feed.SortPopular, feed.SortTrending}

type drawerRowKind string

const (
	drawerSearch    drawerRowKind = "search"
	drawerVerified  drawerRowKind = "verified"
	drawerSort      drawerRowKind = "sort"
	drawerDateRange drawerRowKind = "daterange"
	drawerType      drawerRowKind = "type"
	drawerLicense   drawerRowKind = "license"
	drawerTag       drawerRowKind = "tag"
)

type drawerRow struct {
	Kind  drawerRowKind
	Value string
}

type Model struct {
	service actions.Service
	loader  *app.Loader

	cfg       feed.Config
	paginator feed.Paginator
	filtered  []registry.Asset
	expanded  map[string]bool
	cursor    int

	drawerOpen   bool
	drawerCursor int
	searchInput  textinput.Model

	typeOptions    []string
	licenseOptions []string
	tagOptions     []string

	width        int
	height       int
	status       string
	statusID     int
	relativeTime bool

	shareBaseURL string
	openURLFn    func(string) error
	copyFn       func(string) error
	nowFn        func() time.Time

	th tuitheme.Theme
}

func NewModel(service actions.Service, shareBaseURL string, cached []registry.Asset) Model {
	loader := app.NewLoader()
	loader.SeedCached(cached)

	input := textinput.New()
	input.Placeholder = "search title, description, creator, tags"
	input.CharLimit = 120
	input.Prompt = "search: "

	m := Model{
		service:      service,
		loader:       loader,
		cfg:          feed.DefaultConfig(),
		paginator:    feed.NewPaginator(),
		expanded:     make(map[string]bool),
		searchInput:  input,
		shareBaseURL: strings.TrimRight(shareBaseURL, "/"),
		openURLFn:    platform.OpenURLInBrowser,
		copyFn:       platform.CopyToClipboard,
		nowFn:        time.Now,
		th:           tuitheme.Default(),
	}
	m.rebuildOptions()
	m.refilter()
	return m
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	generation, ok := m.loader.Start()
	if !ok {
		return nil
	}
	return actions.FetchCmd(m.service, generation, "init")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 12; w > 10 {
			m.searchInput.Width = w
		}
		return m, nil
	case tea.KeyMsg:
		if m.drawerOpen {
			return m.updateDrawer(msg)
		}
		return m.updateList(msg)
	case actions.FetchSuccessMsg:
		if !m.loader.Finish(msg.Generation, msg.Assets, nil) {
			return m, nil
		}
		m.rebuildOptions()
		m.refilter()
		if msg.Source == "manual" {
			m.status = fmt.Sprintf("Timeline refreshed: %d assets", len(msg.Assets))
			m.statusID++
			return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
		}
		return m, nil
	case actions.FetchErrorMsg:
		if !m.loader.Finish(msg.Generation, nil, msg.Err) {
			return m, nil
		}
		m.refilter()
		return m, nil
	case actions.AdvanceSettledMsg:
		if m.paginator.Complete(len(m.filtered)) {
			m.status = fmt.Sprintf("Loaded page %d", m.paginator.Page())
		} else {
			m.status = "End of timeline"
		}
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
	case actions.ShareSuccessMsg:
		m.status = msg.Status
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
	case actions.ShareErrorMsg:
		m.status = msg.Err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)
	case actions.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		m.moveCursorBy(-1)
		return m, nil
	case "down", "j":
		m.moveCursorBy(1)
		return m, m.maybeAdvanceCmd()
	case "pgup", "ctrl+b":
		m.moveCursorBy(-state.PageStep(m.height, m.status != ""))
		return m, nil
	case "pgdown", "ctrl+f":
		m.moveCursorBy(state.PageStep(m.height, m.status != ""))
		return m, m.maybeAdvanceCmd()
	case "g":
		m.cursor = 0
		return m, nil
	case "G":
		m.cursor = m.visibleCount() - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
		return m, m.maybeAdvanceCmd()
	case "enter":
		if asset, ok := m.currentAsset(); ok {
			m.expanded[asset.ID] = !m.expanded[asset.ID]
		}
		return m, nil
	case "r":
		if m.service == nil {
			return m, nil
		}
		generation, ok := m.loader.Refetch()
		if !ok {
			return m, nil
		}
		m.status = ""
		return m, actions.FetchCmd(m.service, generation, "manual")
	case "t":
		m.relativeTime = !m.relativeTime
		if m.relativeTime {
			m.status = "Relative dates"
		} else {
			m.status = "Absolute dates"
		}
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
	case "y":
		return m.copyCurrentShareURL()
	case "o":
		return m.openCurrentShareURL()
	case "f":
		m.drawerOpen = true
		m.drawerCursor = 0
		m.searchInput.SetValue(m.cfg.Search)
		m.searchInput.Focus()
		return m, textinput.Blink
	case "F":
		m.setConfig(feed.DefaultConfig())
		m.status = "Filters cleared"
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 3*time.Second)
	}
	return m, nil
}

func (m Model) updateDrawer(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.drawerRows()
	m.drawerCursor = state.ClampCursor(m.drawerCursor, len(rows))
	onSearch := m.drawerCursor == 0

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.drawerOpen = false
		m.searchInput.Blur()
		return m, nil
	case "up":
		m.moveDrawerCursor(-1, len(rows))
		return m, nil
	case "down":
		m.moveDrawerCursor(1, len(rows))
		return m, nil
	}

	if onSearch {
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		next := m.cfg
		next.Search = strings.TrimSpace(m.searchInput.Value())
		m.setConfig(next)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "k":
		m.moveDrawerCursor(-1, len(rows))
		return m, nil
	case "j":
		m.moveDrawerCursor(1, len(rows))
		return m, nil
	case " ", "enter":
		m.toggleDrawerRow(rows[m.drawerCursor])
		return m, nil
	case "x":
		m.clearDrawerRow(rows[m.drawerCursor])
		return m, nil
	case "f":
		m.drawerOpen = false
		m.searchInput.Blur()
		return m, nil
	}
	return m, nil
}

func (m *Model) moveDrawerCursor(delta, size int) {
	m.drawerCursor = state.ClampCursor(m.drawerCursor+delta, size)
	if m.drawerCursor == 0 {
		m.searchInput.Focus()
	} else {
		m.searchInput.Blur()
	}
}

func (m *Model) toggleDrawerRow(row drawerRow) {
	next := m.cfg
	switch row.Kind {
	case drawerVerified:
		next.VerifiedOnly = !next.VerifiedOnly
	case drawerSort:
		next.Sort = cycleValue(sortCycle, next.Sort)
	case drawerDateRange:
		next.DateRange = cycleValue(dateRangeCycle, next.DateRange)
	case drawerType:
		next.Types = toggleValue(next.Types, row.Value)
	case drawerLicense:
		next.Licenses = toggleValue(next.Licenses, row.Value)
	case drawerTag:
		next.Tags = toggleValue(next.Tags, row.Value)
	default:
		return
	}
	m.setConfig(next)
}

func (m *Model) clearDrawerRow(row drawerRow) {
	switch row.Kind {
	case drawerSearch:
		m.searchInput.SetValue("")
		m.setConfig(m.cfg.ClearSearch())
	case drawerVerified:
		m.setConfig(m.cfg.ClearVerified())
	case drawerSort:
		next := m.cfg
		next.Sort = feed.SortRecent
		m.setConfig(next)
	case drawerDateRange:
		next := m.cfg
		next.DateRange = feed.DefaultDateRange
		m.setConfig(next)
	case drawerType:
		m.setConfig(m.cfg.WithoutType(row.Value))
	case drawerLicense:
		m.setConfig(m.cfg.WithoutLicense(row.Value))
	case drawerTag:
		m.setConfig(m.cfg.WithoutTag(row.Value))
	}
}

// setConfig swaps in a new filter configuration. Pagination resets on
// any change by value; an identical config leaves the revealed window
// alone.
func (m *Model) setConfig(next feed.Config) {
	if m.cfg.Equal(next) {
		return
	}
	m.cfg = next
	m.paginator.Reset()
	m.refilter()
}

// refilter recomputes the visible subset. The cursor stays anchored on
// the asset it was on when that asset is still inside the revealed
// window, and clamps otherwise.
func (m *Model) refilter() {
	anchor := ""
	if asset, ok := m.currentAsset(); ok {
		anchor = asset.ID
	}
	m.filtered = feed.Apply(m.loader.Assets(), m.cfg)
	if anchor != "" {
		if idx := state.AssetIndexByID(m.filtered, anchor); idx >= 0 && idx < m.visibleCount() {
			m.cursor = idx
			return
		}
	}
	m.cursor = state.ClampCursor(m.cursor, m.visibleCount())
}

func (m *Model) rebuildOptions() {
	m.typeOptions, m.licenseOptions, m.tagOptions = collectOptions(m.loader.Assets())
}

func (m *Model) moveCursorBy(delta int) {
	m.cursor = state.ClampCursor(m.cursor+delta, m.visibleCount())
}

func (m Model) visibleCount() int {
	return m.paginator.VisibleCount(len(m.filtered))
}

func (m Model) currentAsset() (registry.Asset, bool) {
	visible := feed.Visible(m.filtered, m.paginator)
	if len(visible) == 0 || m.cursor >= len(visible) {
		return registry.Asset{}, false
	}
	return visible[m.cursor], true
}

// maybeAdvanceCmd starts a page advance when the cursor lands near the
// end of the revealed window. The paginator rejects overlapping
// triggers, so holding j at the bottom issues a single advance per
// settle window.
func (m *Model) maybeAdvanceCmd() tea.Cmd {
	visible := m.visibleCount()
	if visible == 0 {
		return nil
	}
	if !feed.NearEnd(m.cursor, 1, visible, nearEndRows) {
		return nil
	}
	if !m.paginator.Begin() {
		return nil
	}
	return actions.AdvanceCmd()
}

func (m Model) shareURLForCurrent() (string, error) {
	asset, ok := m.currentAsset()
	if !ok {
		return "", fmt.Errorf("no asset selected")
	}
	ref := strings.TrimSpace(asset.Slug)
	if ref == "" {
		ref = strings.TrimSpace(asset.ID)
	}
	if ref == "" {
		return "", fmt.Errorf("asset has no shareable reference")
	}
	return platform.ValidateShareURL(m.shareBaseURL + "/asset/" + ref)
}

func (m Model) copyCurrentShareURL() (tea.Model, tea.Cmd) {
	url, err := m.shareURLForCurrent()
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, actions.CopyShareCmd(url, m.copyFn)
}

func (m Model) openCurrentShareURL() (tea.Model, tea.Cmd) {
	url, err := m.shareURLForCurrent()
	if err != nil {
		m.status = err.Error()
		m.statusID++
		return m, actions.ClearStatusCmd(m.statusID, 4*time.Second)
	}
	return m, actions.OpenShareCmd(url, m.openURLFn, m.copyFn)
}

func (m Model) View() string {
	mode := "timeline"
	if m.drawerOpen {
		mode = "filters"
	}

	var b strings.Builder
	b.WriteString(m.th.Title.Render("IP Timeline"))
	b.WriteString(" " + m.th.ModePill.Render(mode))
	if count := m.cfg.ActiveCount(); count > 0 {
		b.WriteString(" " + m.th.FilterCount.Render(fmt.Sprintf("[%d filters]", count)))
	}
	b.WriteString("\n")
	b.WriteString(view.Toolbar(m.drawerOpen))
	b.WriteString("\n\n")

	if m.drawerOpen {
		b.WriteString(m.drawerView())
	} else {
		b.WriteString(m.listView())
	}

	b.WriteString("\n")
	b.WriteString(view.Message(m.loader.Loading(), m.status, m.loader.Err(), m.th))
	b.WriteString("\n")
	b.WriteString(view.Footer(
		m.paginator.Page(),
		m.visibleCount(),
		len(m.filtered),
		len(m.loader.Assets()),
		m.cfg.ActiveCount(),
		m.paginator.HasMore(),
		m.th,
	))
	b.WriteString("\n")
	return b.String()
}

func (m Model) listView() string {
	if m.loader.Loading() && len(m.loader.Assets()) == 0 {
		return "Loading timeline...\n"
	}
	if m.loader.Err() != "" && len(m.loader.Assets()) == 0 {
		return "Could not load the timeline. Press r to retry.\n"
	}
	if len(m.loader.Assets()) == 0 {
		return "The collection is empty.\n"
	}
	visible := feed.Visible(m.filtered, m.paginator)
	if len(visible) == 0 {
		return "No assets match the current filters. Press F to clear them.\n"
	}

	start, end := state.CenteredWindow(len(visible), m.cursor, m.listHeight())
	now := m.nowFn()

	var b strings.Builder
	for i := start; i < end; i++ {
		asset := visible[i]
		b.WriteString(view.RenderAssetLine(view.AssetLineParams{
			Asset:        asset,
			Now:          now,
			RelativeTime: m.relativeTime,
			VisiblePos:   i,
			Active:       i == m.cursor,
			Expanded:     m.expanded[asset.ID],
			Width:        m.contentWidth(),
		}, m.th))
		b.WriteString("\n")
		if m.expanded[asset.ID] {
			for _, line := range card.Lines(asset, m.contentWidth()-8) {
				b.WriteString("        " + m.th.CardBody.Render(line))
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

func (m Model) drawerView() string {
	var b strings.Builder
	for i, row := range m.drawerRows() {
		active := i == m.drawerCursor
		b.WriteString(m.th.RenderActiveLine(active, m.drawerRowLabel(row, active)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) drawerRowLabel(row drawerRow, active bool) string {
	marker := "  "
	if active {
		marker = "> "
	}
	switch row.Kind {
	case drawerSearch:
		return marker + m.searchInput.View()
	case drawerVerified:
		return marker + "verified creators only " + checkbox(m.cfg.VerifiedOnly)
	case drawerSort:
		return marker + "sort: " + m.cfg.Sort
	case drawerDateRange:
		return marker + "date range: " + m.cfg.DateRange
	case drawerType:
		return marker + "  type " + row.Value + " " + checkbox(containsFold(m.cfg.Types, row.Value))
	case drawerLicense:
		return marker + "  license " + row.Value + " " + checkbox(containsFold(m.cfg.Licenses, row.Value))
	case drawerTag:
		return marker + "  tag " + row.Value + " " + checkbox(containsFold(m.cfg.Tags, row.Value))
	}
	return marker
}

func (m Model) drawerRows() []drawerRow {
	rows := []drawerRow{
		{Kind: drawerSearch},
		{Kind: drawerVerified},
		{Kind: drawerSort},
		{Kind: drawerDateRange},
	}
	for _, v := range m.typeOptions {
		rows = append(rows, drawerRow{Kind: drawerType, Value: v})
	}
	for _, v := range m.licenseOptions {
		rows = append(rows, drawerRow{Kind: drawerLicense, Value: v})
	}
	for _, v := range m.tagOptions {
		rows = append(rows, drawerRow{Kind: drawerTag, Value: v})
	}
	return rows
}

func (m Model) contentWidth() int {
	if m.width > 0 {
		return m.width - 1
	}
	return 100
}

func (m Model) listHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - 7
	if h < 3 {
		h = 3
	}
	return h
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func cycleValue(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func toggleValue(values []string, value string) []string {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			out := make([]string, 0, len(values)-1)
			for _, keep := range values {
				if !strings.EqualFold(keep, value) {
					out = append(out, keep)
				}
			}
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
	out := make([]string, 0, len(values)+1)
	out = append(out, values...)
	return append(out, value)
}

func containsFold(values []string, value string) bool {
	for _, v := range values {
		if strings.EqualFold(v, value) {
			return true
		}
	}
	return false
}

func collectOptions(assets []registry.Asset) (types, licenses, tags []string) {
	typeSet := make(map[string]struct{})
	licenseSet := make(map[string]struct{})
	tagSet := make(map[string]struct{})
	for _, a := range assets {
		if t := strings.TrimSpace(strings.ToLower(a.Type)); t != "" {
			typeSet[t] = struct{}{}
		}
		if l := feed.LicenseSlug(a.LicenseType); l != "" {
			licenseSet[l] = struct{}{}
		}
		for _, tag := range strings.Split(a.Tags, ",") {
			if t := strings.TrimSpace(strings.ToLower(tag)); t != "" {
				tagSet[t] = struct{}{}
			}
		}
	}
	return sortedKeys(typeSet), sortedKeys(licenseSet), sortedKeys(tagSet)
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
