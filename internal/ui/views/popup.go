package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay renders a popup centred on top of main content. The
// cells left and right of the popup keep their original styling.
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int, popupStyle lipgloss.Style) string {
	styledPopup := popupStyle.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(mainContent, "\n")
	for len(base) < height {
		base = append(base, "")
	}

	for i, line := range strings.Split(styledPopup, "\n") {
		row := y + i
		if row >= len(base) {
			break
		}
		under := base[row]
		left := ansi.Truncate(under, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(under, x+ansi.StringWidth(line), "")
		base[row] = left + resetSGR + line + resetSGR + right
	}
	return strings.Join(base, "\n")
}

// RenderNotice formats a blocking notice
func (pr *PopupRenderer) RenderNotice(n NoticeView, width int) string {
	titleStyle := pr.styles.NoticeTitle
	if n.IsError {
		titleStyle = pr.styles.NoticeError
	}
	msgWidth := min(max(width-12, 10), 60)

	var b strings.Builder
	b.WriteString(titleStyle.Render(n.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(msgWidth).Render(n.Message))
	b.WriteString("\n\n")
	b.WriteString(pr.styles.Dim.Render("enter to dismiss"))
	return b.String()
}
