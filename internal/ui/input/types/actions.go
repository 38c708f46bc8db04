package types

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitSearchAction struct {
	Topic string
}

func (a SubmitSearchAction) Type() string { return "submit_search" }

// Gallery actions
type FlingAction struct {
	Direction int // -1 previous page, 1 next page
}

func (a FlingAction) Type() string { return "fling" }

type DragAction struct {
	Delta int // columns, positive scrolls towards later photos
}

func (a DragAction) Type() string { return "drag" }

type TapThumbnailAction struct {
	Index int
}

func (a TapThumbnailAction) Type() string { return "tap_thumbnail" }

type CloseGalleryAction struct{}

func (a CloseGalleryAction) Type() string { return "close_gallery" }

type ReopenGalleryAction struct{}

func (a ReopenGalleryAction) Type() string { return "reopen_gallery" }

type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type DismissNoticeAction struct{}

func (a DismissNoticeAction) Type() string { return "dismiss_notice" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
