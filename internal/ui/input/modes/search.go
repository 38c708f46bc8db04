package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/ui/input/types"
)

// SearchMode edits the topic shown on the search entry screen
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", ti),
	}
}

func (m *SearchMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		if ctx.HasPhotos() {
			return []types.Action{types.ReopenGalleryAction{}}, true
		}
		return nil, true
	case "enter":
		// The text is cleared by the model once the search is accepted
		return []types.Action{types.SubmitSearchAction{Topic: m.value()}}, true
	default:
		// Let the main handler update the text input
		return nil, false
	}
}
