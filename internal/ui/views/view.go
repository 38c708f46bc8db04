package views

import (
	"fmt"
	"image"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"pexview/internal/domain"
)

// NoticeView is a blocking message ready for display
type NoticeView struct {
	Title   string
	Message string
	IsError bool
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Mode          string // "search", "loading" or "gallery"
	Layout        Layout
	TextInput     string
	Topic         string
	Spinner       string
	HasPhotos     bool
	Generation    uint64
	Photos        []domain.Photo
	ActiveIndex   int
	PagerOffset   float64
	StripOffset   float64
	ThumbnailSize int
	Spacing       int
	Images        map[int64]image.Image
	FailedImages  map[int64]bool
	Notice        *NoticeView
	ShowInfo      bool
	StatusMessage string
	HelpModel     help.Model
}

// Renderer handles all view rendering
type Renderer struct {
	styles        *Styles
	galleryRender *GalleryRenderer
	popupRender   *PopupRenderer
	infoRender    *InfoRenderer
	galleryKeys   GalleryKeyMap
	searchKeys    SearchKeyMap
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:        styles,
		galleryRender: NewGalleryRenderer(styles),
		popupRender:   NewPopupRenderer(styles),
		infoRender:    NewInfoRenderer(),
		galleryKeys:   NewGalleryKeyMap(),
		searchKeys:    NewSearchKeyMap(),
	}
}

// GalleryKeys returns the bindings listed in the help bar
func (r *Renderer) GalleryKeys() GalleryKeyMap {
	return r.galleryKeys
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.Width <= 0 || state.Height <= 0 {
		return ""
	}

	var content string
	switch state.Mode {
	case "gallery":
		content = r.renderGallery(state)
	case "loading":
		content = r.renderLoading(state)
	default:
		content = r.renderSearch(state)
	}

	// Overlay popups on top of main content
	if state.Notice != nil {
		notice := r.popupRender.RenderNotice(*state.Notice, state.Width)
		return r.popupRender.RenderPopupOverlay(content, notice, state.Height, state.Width, r.styles.NoticeBox)
	}

	if state.ShowInfo && state.Mode == "gallery" && state.ActiveIndex < len(state.Photos) {
		infoWidth := min(max(state.Width-10, 20), 72)
		info := r.infoRender.Render(state.Photos[state.ActiveIndex], infoWidth)
		return r.popupRender.RenderPopupOverlay(content, info, state.Height, state.Width, r.styles.InfoBox)
	}

	return content
}

func (r *Renderer) renderSearch(state ViewState) string {
	keys := r.searchKeys
	keys.Back.SetEnabled(state.HasPhotos)

	var b strings.Builder
	b.WriteString(r.styles.Prompt.Render("pexview"))
	b.WriteString("\n")
	b.WriteString(r.styles.InputBox.Render(state.TextInput))
	b.WriteString("\n")
	b.WriteString(r.styles.Hint.Render(state.HelpModel.ShortHelpView(keys.ShortHelp())))
	if state.StatusMessage != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	block := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, block)
}

func (r *Renderer) renderLoading(state ViewState) string {
	line := fmt.Sprintf("%s Searching %q", r.styles.Spinner.Render(state.Spinner), state.Topic)
	return lipgloss.Place(state.Width, state.Height, lipgloss.Center, lipgloss.Center, line)
}

func (r *Renderer) renderGallery(state ViewState) string {
	lines := make([]string, 0, state.Height)
	lines = append(lines, r.renderTitle(state))
	lines = append(lines, r.galleryRender.RenderPager(state)...)
	lines = append(lines, r.galleryRender.RenderStrip(state)...)
	lines = append(lines, r.renderFooter(state))

	if len(lines) > state.Height {
		lines = lines[:state.Height]
	}
	return strings.Join(lines, "\n")
}

// renderTitle shows the app name, topic and photographer on the left and the
// position on the right
func (r *Renderer) renderTitle(state ViewState) string {
	left := r.styles.Title.Render("pexview")
	if state.Topic != "" {
		left += "  " + r.styles.Topic.Render(state.Topic)
	}
	if state.ActiveIndex < len(state.Photos) {
		if name := state.Photos[state.ActiveIndex].Photographer; name != "" {
			left += r.styles.Dim.Render("  by " + name)
		}
	}

	right := r.styles.Counter.Render(fmt.Sprintf("%d/%d", state.ActiveIndex+1, len(state.Photos)))
	pad := state.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if pad < 1 {
		return truncate(left, state.Width)
	}
	return left + strings.Repeat(" ", pad) + right
}

func (r *Renderer) renderFooter(state ViewState) string {
	if state.StatusMessage != "" && strings.HasPrefix(state.StatusMessage, "Error") {
		return truncate(r.styles.StatusError.Render(state.StatusMessage), state.Width)
	}
	h := state.HelpModel
	h.Width = state.Width
	return r.styles.Help.Render(h.View(r.galleryKeys))
}

func truncate(s string, width int) string {
	return lipgloss.NewStyle().MaxWidth(width).Render(s)
}
