// Package card turns an asset into the text lines of its expanded
// detail card. Descriptions may carry rich-text markup from the
// registry, so they are run through an HTML tokenizer before wrapping.
package card

import (
	"strings"
	"time"

	nethtml "golang.org/x/net/html"

	"github.com/vtorres/timeline-cli/internal/feed"
	"github.com/vtorres/timeline-cli/internal/registry"
)

var blockBreakers = map[string]bool{
	"p": true, "div": true, "li": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true,
}

// DescriptionText strips markup from a description, collapsing block
// elements to line breaks. Plain-text descriptions pass through intact.
func DescriptionText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "<") {
		return trimmed
	}

	var b strings.Builder
	z := nethtml.NewTokenizer(strings.NewReader(trimmed))
	skipDepth := 0
	for {
		tt := z.Next()
		switch tt {
		case nethtml.ErrorToken:
			return collapseBlankLines(b.String())
		case nethtml.StartTagToken, nethtml.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == nethtml.StartTagToken {
					skipDepth++
				}
				continue
			}
			if blockBreakers[tag] {
				b.WriteString("\n")
			}
		case nethtml.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if blockBreakers[tag] {
				b.WriteString("\n")
			}
		case nethtml.TextToken:
			if skipDepth > 0 {
				continue
			}
			b.WriteString(string(z.Text()))
		}
	}
}

func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.Join(strings.Fields(line), " ")
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			if len(out) > 0 {
				out = append(out, "")
			}
			continue
		}
		out = append(out, trimmed)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// Lines renders the expanded card body for one asset.
func Lines(a registry.Asset, width int) []string {
	lines := make([]string, 0, 12)

	meta := func(label, value string) {
		if strings.TrimSpace(value) == "" {
			return
		}
		lines = append(lines, WrapText(label+": "+value, width)...)
	}

	creator := a.Creator.Name
	if a.Creator.Verified && creator != "" {
		creator += " (verified)"
	}
	meta("Creator", creator)
	meta("Type", a.Type)
	meta("License", a.LicenseType)
	meta("Tags", a.Tags)
	if ms := feed.OrderTime(a); ms > 0 {
		meta("Registered", time.UnixMilli(ms).UTC().Format(time.DateOnly))
	}
	meta("Token", a.TokenID)

	if desc := DescriptionText(a.Description); desc != "" {
		lines = append(lines, "")
		lines = append(lines, WrapText(desc, width)...)
	}

	return lines
}

// WrapText greedily wraps words to width, splitting words longer than a
// full line.
func WrapText(text string, width int) []string {
	if width < 1 {
		return []string{text}
	}
	paragraphs := strings.Split(text, "\n")
	out := make([]string, 0, len(paragraphs))

	for _, p := range paragraphs {
		words := strings.Fields(p)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}
		line := ""
		for _, word := range words {
			for len(word) > width {
				if line != "" {
					out = append(out, line)
					line = ""
				}
				out = append(out, word[:width])
				word = word[width:]
			}

			if line == "" {
				line = word
				continue
			}
			if len(line)+1+len(word) <= width {
				line += " " + word
				continue
			}
			out = append(out, line)
			line = word
		}
		if line != "" {
			out = append(out, line)
		}
	}

	return out
}
