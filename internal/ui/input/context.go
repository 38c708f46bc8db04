package input

import (
	"pexview/internal/ui/logic"
	"pexview/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
	Sync  *logic.SyncController

	// StripTop and StripHeight locate the thumbnail strip on screen
	StripTop    int
	StripHeight int
}

// CurrentIndex returns the active photo index
func (c *ModelContext) CurrentIndex() int {
	return c.State.ActiveIndex
}

// PhotoCount returns the number of photos in the gallery
func (c *ModelContext) PhotoCount() int {
	return len(c.State.Photos)
}

// HasPhotos reports whether a result set is held
func (c *ModelContext) HasPhotos() bool {
	return c.State.Photos != nil
}

// OnStrip reports whether row y belongs to the thumbnail strip
func (c *ModelContext) OnStrip(y int) bool {
	return c.StripHeight > 0 && y >= c.StripTop && y < c.StripTop+c.StripHeight
}

// ThumbnailAtColumn maps screen column x to the thumbnail under it
func (c *ModelContext) ThumbnailAtColumn(x int) (int, bool) {
	if c.Sync == nil {
		return 0, false
	}
	contentX := float64(x) + c.Sync.Strip.Offset
	return c.Sync.Geometry().ThumbnailAt(contentX, c.PhotoCount())
}
