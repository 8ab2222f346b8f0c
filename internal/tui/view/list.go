package view

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"

	"github.com/vtorres/timeline-cli/internal/feed"
	"github.com/vtorres/timeline-cli/internal/registry"
	tuitheme "github.com/vtorres/timeline-cli/internal/tui/theme"
)

var reANSICodes = regexp.MustCompile(`\x1b\[[0-9;]*m`)

type AssetLineParams struct {
	Asset        registry.Asset
	Now          time.Time
	RelativeTime bool
	VisiblePos   int
	Active       bool
	Expanded     bool
	Width        int
}

// RenderAssetLine draws one timeline row: cursor marker, position,
// type badge, title and a right-aligned registration date.
func RenderAssetLine(p AssetLineParams, th tuitheme.Theme) string {
	dateLabel := "[" + DateLabel(p.Asset, p.Now, p.RelativeTime) + "]"

	cursorMarker := " "
	if p.Active {
		cursorMarker = ">"
	}
	expandedMarker := " "
	if p.Expanded {
		expandedMarker = "-"
	}

	prefix := fmt.Sprintf("  %s%s%3d. ", cursorMarker, expandedMarker, p.VisiblePos+1)
	badge := typeBadge(p.Asset)
	styledBadge := ""
	if badge != "" {
		styledBadge = th.TypeBadge.Render(badge) + " "
	}

	available := p.Width - visibleLen(prefix) - visibleLen(badge) - 2 - visibleLen(dateLabel)
	if available < 1 {
		available = 1
	}

	title := strings.TrimSpace(p.Asset.Title)
	if title == "" {
		title = "(untitled)"
	}
	title = truncateRunes(title, available)
	styledTitle := th.StyleAssetTitle(p.Asset, title)

	gap := p.Width - visibleLen(prefix) - visibleLen(badge+" ") - visibleLen(title) - visibleLen(dateLabel)
	if gap < 1 {
		gap = 1
	}
	return th.RenderActiveLine(p.Active, prefix+styledBadge+styledTitle+strings.Repeat(" ", gap)+dateLabel)
}

// DateLabel formats an asset's effective registration time, relative
// ("3 days ago") or absolute, falling back to "unknown" when the asset
// carries no parsable date at all.
func DateLabel(a registry.Asset, now time.Time, relative bool) string {
	ms := feed.OrderTime(a)
	if ms == 0 {
		return "unknown"
	}
	when := time.UnixMilli(ms).UTC()
	if !relative {
		return when.Format(time.DateOnly)
	}
	if now.IsZero() {
		now = time.Now()
	}
	return humanize.RelTime(when, now, "ago", "from now")
}

func typeBadge(a registry.Asset) string {
	t := strings.TrimSpace(strings.ToLower(a.Type))
	if t == "" {
		return ""
	}
	return "[" + t + "]"
}

func truncateRunes(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}

func visibleLen(s string) int {
	return utf8.RuneCountInString(stripANSIText(s))
}

func stripANSIText(s string) string {
	return reANSICodes.ReplaceAllString(s, "")
}
