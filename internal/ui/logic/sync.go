package logic

import "math"

// Geometry holds the sizes both surfaces are laid out with
type Geometry struct {
	PageWidth     float64 // width of one pager page
	Viewport      float64 // visible width of the thumbnail strip
	ThumbnailSize float64
	Spacing       float64
}

// ItemExtent is the distance between two thumbnail origins
func (g Geometry) ItemExtent() float64 {
	return g.ThumbnailSize + g.Spacing
}

// PagerOffset is the pager offset showing page index
func (g Geometry) PagerOffset(index int) float64 {
	return float64(index) * g.PageWidth
}

// ThumbnailOffset is the strip offset for index. Once the thumbnail would sit
// past the middle of the viewport it is kept centred; before that the strip
// stays at its start.
func (g Geometry) ThumbnailOffset(index int) float64 {
	extent := g.ItemExtent()
	raw := float64(index)*extent - g.ThumbnailSize/2
	if raw > g.Viewport/2 {
		return float64(index)*extent - g.Viewport/2 + g.ThumbnailSize/2
	}
	return 0
}

// StripContentWidth is the scrollable width of a strip with n thumbnails,
// including the leading and trailing padding.
func (g Geometry) StripContentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 2*g.Spacing + float64(n)*g.ItemExtent() - g.Spacing
}

// ThumbnailAt maps a strip content coordinate to a thumbnail index.
// Clicks on padding or gaps return false.
func (g Geometry) ThumbnailAt(x float64, n int) (int, bool) {
	x -= g.Spacing
	if x < 0 || g.ItemExtent() <= 0 {
		return 0, false
	}
	index := int(math.Floor(x / g.ItemExtent()))
	if index >= n {
		return 0, false
	}
	if x-float64(index)*g.ItemExtent() >= g.ThumbnailSize {
		return 0, false
	}
	return index, true
}

// SettledIndex is the page a pager at rest on offset x shows.
// Halves round up.
func SettledIndex(x, pageWidth float64) int {
	if pageWidth <= 0 {
		return 0
	}
	return int(math.Floor(x/pageWidth + 0.5))
}

// IndexStore owns the active index. Both surfaces project it.
type IndexStore interface {
	SetActiveIndex(index int) int
	CurrentIndex() int
	PhotoCount() int
}

// SyncState is the controller state
type SyncState int

const (
	SyncIdle SyncState = iota
	SyncAnimating
)

func (s SyncState) String() string {
	if s == SyncAnimating {
		return "animating"
	}
	return "idle"
}

// SyncController keeps the pager and the thumbnail strip on the same index
type SyncController struct {
	geometry Geometry
	store    IndexStore
	state    SyncState

	Pager ScrollSurface
	Strip ScrollSurface
}

// NewSyncController creates a controller writing the active index to store
func NewSyncController(store IndexStore, g Geometry) *SyncController {
	c := &SyncController{store: store}
	c.SetGeometry(g)
	return c
}

// Geometry returns the current layout sizes
func (c *SyncController) Geometry() Geometry {
	return c.geometry
}

// State returns Idle or Animating
func (c *SyncController) State() SyncState {
	return c.state
}

// SetGeometry applies new sizes, e.g. after a terminal resize. The pager is
// re-aligned to the active page without animation.
func (c *SyncController) SetGeometry(g Geometry) {
	c.geometry = g
	c.updateBounds()
	active := c.store.SetActiveIndex(c.store.CurrentIndex())
	c.Pager.ScrollTo(g.PagerOffset(active), false)
	c.Strip.ScrollTo(g.ThumbnailOffset(active), false)
	c.state = SyncIdle
}

// Reset places both surfaces at their start for a new result set
func (c *SyncController) Reset() {
	c.updateBounds()
	c.store.SetActiveIndex(0)
	c.Pager.ScrollTo(0, false)
	c.Strip.ScrollTo(0, false)
	c.state = SyncIdle
}

// OnGestureSettle handles the pager coming to rest at offset x after a
// gesture. The pager is already in place so only the strip moves.
func (c *SyncController) OnGestureSettle(x float64) int {
	if c.store.PhotoCount() == 0 {
		return 0
	}
	index := c.store.SetActiveIndex(SettledIndex(x, c.geometry.PageWidth))
	c.Strip.ScrollTo(c.geometry.ThumbnailOffset(index), true)
	c.refreshState()
	return index
}

// OnThumbnailTap makes index active and moves both surfaces to it
func (c *SyncController) OnThumbnailTap(index int) int {
	if c.store.PhotoCount() == 0 {
		return 0
	}
	index = c.store.SetActiveIndex(index)
	c.Pager.ScrollTo(c.geometry.PagerOffset(index), true)
	c.Strip.ScrollTo(c.geometry.ThumbnailOffset(index), true)
	c.refreshState()
	return index
}

// Fling is a paging gesture of dir pages (negative is left)
func (c *SyncController) Fling(dir int) {
	if c.store.PhotoCount() == 0 {
		return
	}
	page := SettledIndex(c.Pager.Offset, c.geometry.PageWidth) + dir
	c.Pager.Fling(c.geometry.PagerOffset(page))
	c.refreshState()
}

// Drag moves the pager freely by delta columns during a gesture
func (c *SyncController) Drag(delta float64) {
	c.Pager.Drag(delta)
}

// Snap ends a free drag by paging to the nearest boundary
func (c *SyncController) Snap() {
	if c.store.PhotoCount() == 0 {
		return
	}
	page := SettledIndex(c.Pager.Offset, c.geometry.PageWidth)
	c.Pager.Fling(c.geometry.PagerOffset(page))
	c.refreshState()
}

// StepResult reports what happened in one animation frame
type StepResult struct {
	Settled bool // a pager gesture came to rest
	Index   int  // active index after the frame
}

// Step advances both surfaces by one frame
func (c *SyncController) Step() StepResult {
	res := StepResult{Index: c.store.CurrentIndex()}
	c.Strip.Step()
	if c.Pager.Step() == RestGesture {
		res.Settled = true
		res.Index = c.OnGestureSettle(c.Pager.Offset)
	}
	c.refreshState()
	return res
}

func (c *SyncController) refreshState() {
	if c.Pager.Animating() || c.Strip.Animating() {
		c.state = SyncAnimating
	} else {
		c.state = SyncIdle
	}
}

func (c *SyncController) updateBounds() {
	n := c.store.PhotoCount()
	c.Pager.SetMax(c.geometry.PagerOffset(max(n-1, 0)))
	c.Strip.SetMax(c.geometry.StripContentWidth(n) - c.geometry.Viewport)
}
