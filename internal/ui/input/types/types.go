package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeSearch Mode = iota
	ModeLoading
	ModeGallery
	ModeNotice
)

func (m Mode) String() string {
	switch m {
	case ModeSearch:
		return "search"
	case ModeLoading:
		return "loading"
	case ModeGallery:
		return "gallery"
	case ModeNotice:
		return "notice"
	default:
		return "unknown"
	}
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	PhotoCount() int
	HasPhotos() bool
	// ThumbnailAtColumn maps a screen column on the strip row to a thumbnail
	ThumbnailAtColumn(x int) (int, bool)
	// OnStrip reports whether a screen row belongs to the thumbnail strip
	OnStrip(y int) bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// MouseHandler is implemented by modes that react to the mouse
type MouseHandler interface {
	HandleMouse(msg tea.MouseMsg, ctx Context) []Action
}
