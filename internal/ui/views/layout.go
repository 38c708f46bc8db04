package views

// Layout is the gallery screen split into rows
type Layout struct {
	Width       int
	Height      int
	PagerTop    int
	PagerHeight int
	StripTop    int
	StripHeight int
	ThumbRows   int // rows of the thumbnail image itself, without the border rows
}

// ComputeLayout places the title bar, pager, strip and footer. Thumbnails are
// square, so a thumbnail thumbSize columns wide is thumbSize/2 rows tall.
func ComputeLayout(width, height, thumbSize int) Layout {
	thumbRows := max(thumbSize/2, 1)
	l := Layout{
		Width:       max(width, 0),
		Height:      max(height, 0),
		PagerTop:    1,
		ThumbRows:   thumbRows,
		StripHeight: thumbRows + 2,
	}
	// title + footer
	l.PagerHeight = max(l.Height-2-l.StripHeight, 0)
	l.StripTop = l.PagerTop + l.PagerHeight
	return l
}
