package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/ui/input/types"
)

// NoticeMode blocks everything but dismissal while a notice is shown
type NoticeMode struct{}

func NewNoticeMode() *NoticeMode {
	return &NoticeMode{}
}

func (m *NoticeMode) Name() string {
	return "notice"
}

func (m *NoticeMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NoticeMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NoticeMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "enter", "esc", " ", "o", "O":
		return []types.Action{types.DismissNoticeAction{}}, true
	}

	// Swallow everything else
	return nil, true
}

// LoadingMode waits for the search to finish
type LoadingMode struct{}

func NewLoadingMode() *LoadingMode {
	return &LoadingMode{}
}

func (m *LoadingMode) Name() string {
	return "loading"
}

func (m *LoadingMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LoadingMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LoadingMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}
	return nil, true
}
