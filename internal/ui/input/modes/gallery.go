package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/ui/input/types"
)

// wheelStep is how far one wheel notch drags the pager, in columns
const wheelStep = 4

type GalleryMode struct{}

func NewGalleryMode() *GalleryMode {
	return &GalleryMode{}
}

func (m *GalleryMode) Name() string {
	return "gallery"
}

func (m *GalleryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *GalleryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *GalleryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyEsc:
		return []types.Action{types.CloseGalleryAction{}}, true

	case tea.KeyLeft:
		return []types.Action{types.FlingAction{Direction: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.FlingAction{Direction: 1}}, true

	case tea.KeyTab:
		return tap(ctx.CurrentIndex() + 1), true

	case tea.KeyShiftTab:
		return tap(ctx.CurrentIndex() - 1), true

	case tea.KeyHome:
		return tap(0), true

	case tea.KeyEnd:
		return tap(ctx.PhotoCount() - 1), true
	}

	key := msg.String()
	switch key {
	case "h":
		return []types.Action{types.FlingAction{Direction: -1}}, true

	case "l":
		return []types.Action{types.FlingAction{Direction: 1}}, true

	case "g":
		return tap(0), true

	case "G":
		return tap(ctx.PhotoCount() - 1), true

	case "x", "/":
		// Back to the search box; photos stay loaded
		return []types.Action{types.CloseGalleryAction{}}, true

	case "i":
		return []types.Action{types.ToggleInfoAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true
	}

	// 1-9 jump straight to a thumbnail
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return tap(int(key[0] - '1')), true
	}

	return nil, false
}

// HandleMouse turns wheel motion into pager drags and strip clicks into taps
func (m *GalleryMode) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	switch msg.Button {
	case tea.MouseButtonWheelLeft:
		return []types.Action{types.DragAction{Delta: -wheelStep}}
	case tea.MouseButtonWheelRight:
		return []types.Action{types.DragAction{Delta: wheelStep}}
	case tea.MouseButtonWheelUp:
		if msg.Shift {
			return []types.Action{types.DragAction{Delta: -wheelStep}}
		}
	case tea.MouseButtonWheelDown:
		if msg.Shift {
			return []types.Action{types.DragAction{Delta: wheelStep}}
		}
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress || !ctx.OnStrip(msg.Y) {
			return nil
		}
		if index, ok := ctx.ThumbnailAtColumn(msg.X); ok {
			return tap(index)
		}
	}
	return nil
}

func tap(index int) []types.Action {
	return []types.Action{types.TapThumbnailAction{Index: index}}
}
