package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vtorres/timeline-cli/internal/registry"
)

type Theme struct {
	Title       lipgloss.Style
	ModePill    lipgloss.Style
	FilterCount lipgloss.Style
	ActiveLine  lipgloss.Style
	MetaLabel   lipgloss.Style
	MetaValue   lipgloss.Style
	StateIdle   lipgloss.Style
	StateWarn   lipgloss.Style
	StateLoad   lipgloss.Style

	TitleVerified lipgloss.Style
	TitleDefault  lipgloss.Style
	CardBody      lipgloss.Style
	TypeBadge     lipgloss.Style
}

func Default() Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpGreen := lipgloss.Color("#a6e3a1")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext0 := lipgloss.Color("#a6adc8")
	cpSubtext1 := lipgloss.Color("#bac2de")
	cpOverlay1 := lipgloss.Color("#7f849c")
	cpSurface0 := lipgloss.Color("#313244")

	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		ModePill:    lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface0).Padding(0, 1),
		FilterCount: lipgloss.NewStyle().Foreground(cpYellow).Bold(true),
		ActiveLine:  lipgloss.NewStyle().Background(cpSurface0).Foreground(cpText),
		MetaLabel:   lipgloss.NewStyle().Foreground(cpOverlay1),
		MetaValue:   lipgloss.NewStyle().Foreground(cpSubtext1),
		StateIdle:   lipgloss.NewStyle().Foreground(cpGreen),
		StateWarn:   lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:   lipgloss.NewStyle().Foreground(cpPeach),

		TitleVerified: lipgloss.NewStyle().Bold(true).Foreground(cpText),
		TitleDefault:  lipgloss.NewStyle().Foreground(cpSubtext0),
		CardBody:      lipgloss.NewStyle().Foreground(cpSubtext1),
		TypeBadge:     lipgloss.NewStyle().Foreground(cpTeal),
	}
}

func (t Theme) StyleAssetTitle(a registry.Asset, title string) string {
	if title == "" {
		return title
	}
	if a.Creator.Verified {
		return t.TitleVerified.Render(title)
	}
	return t.TitleDefault.Render(title)
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
