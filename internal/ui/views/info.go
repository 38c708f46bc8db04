package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"pexview/internal/domain"
)

type infoKey struct {
	id    int64
	width int
}

// InfoRenderer renders photo details as markdown
type InfoRenderer struct {
	cache map[infoKey]string
}

// NewInfoRenderer creates a new info renderer
func NewInfoRenderer() *InfoRenderer {
	return &InfoRenderer{cache: make(map[infoKey]string)}
}

// PhotoMarkdown describes a photo as a markdown document
func PhotoMarkdown(p domain.Photo) string {
	title := strings.TrimSpace(p.Alt)
	if title == "" {
		title = fmt.Sprintf("Photo %d", p.ID)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", title)
	if p.Photographer != "" {
		if p.PhotographerURL != "" {
			fmt.Fprintf(&b, "Photo by [%s](%s)\n\n", p.Photographer, p.PhotographerURL)
		} else {
			fmt.Fprintf(&b, "Photo by %s\n\n", p.Photographer)
		}
	}
	if p.Width > 0 && p.Height > 0 {
		fmt.Fprintf(&b, "- **Size:** %d × %d\n", p.Width, p.Height)
	}
	if p.AvgColor != "" {
		fmt.Fprintf(&b, "- **Average color:** `%s`\n", p.AvgColor)
	}
	if p.URL != "" {
		fmt.Fprintf(&b, "- **Page:** %s\n", p.URL)
	}
	if p.Src.Original != "" {
		fmt.Fprintf(&b, "- **Original:** %s\n", p.Src.Original)
	}
	return b.String()
}

// Render returns the details of p wrapped at width
func (r *InfoRenderer) Render(p domain.Photo, width int) string {
	key := infoKey{id: p.ID, width: width}
	if out, ok := r.cache[key]; ok {
		return out
	}

	md := PhotoMarkdown(p)
	out := md
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(width),
	)
	if err == nil {
		if rendered, err := renderer.Render(md); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}

	r.cache[key] = out
	return out
}
