package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pexview/internal/ui/input/modes"
	"pexview/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for the search box
}

func New() *Handler {
	ti := textinput.New()
	ti.Placeholder = "Search..."
	ti.CharLimit = 120

	h := &Handler{
		currentMode: types.ModeSearch,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeLoading] = modes.NewLoadingMode()
	h.modes[types.ModeGallery] = modes.NewGalleryMode()
	h.modes[types.ModeNotice] = modes.NewNoticeMode()

	h.textInput.Focus()

	return h
}

func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if consumed {
		return actions, nil
	}
	if !h.isTextMode(h.currentMode) {
		return nil, nil
	}

	// Unhandled keys in a text mode go to the text input
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	actions = append(actions, types.UpdateTextAction{Text: h.textInput.Value()})
	return actions, cmd
}

// HandleMouse forwards mouse events to modes that care about them
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	if mh, ok := h.modes[h.currentMode].(types.MouseHandler); ok {
		return mh.HandleMouse(msg, ctx)
	}
	return nil
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

// Update handles non-keyboard messages for text input
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.isTextMode(h.currentMode) {
		var cmd tea.Cmd
		*h.textInput, cmd = h.textInput.Update(msg)
		return cmd
	}
	return nil
}

// ChangeMode changes the current input mode, running the exit and enter hooks
func (h *Handler) ChangeMode(mode types.Mode, ctx types.Context) ([]types.Action, tea.Cmd) {
	if mode == h.currentMode {
		return nil, nil
	}

	var actions []types.Action
	if old := h.modes[h.currentMode]; old != nil {
		actions = append(actions, old.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[mode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}

	if h.isTextMode(mode) {
		return actions, textinput.Blink
	}
	return actions, nil
}

// ClearText empties the search box
func (h *Handler) ClearText() {
	h.textInput.Reset()
}

// TextInput returns the text input model
func (h *Handler) TextInput() *textinput.Model {
	if h == nil {
		return nil
	}
	return h.textInput
}
