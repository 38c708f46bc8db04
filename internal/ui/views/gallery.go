package views

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pexview/internal/domain"
	"pexview/internal/imaging"
)

const unavailableLabel = "image unavailable"

type imageState int

const (
	imagePending imageState = iota
	imageLoaded
	imageFailed
)

type gridKey struct {
	id    int64
	w, h  int
	state imageState
}

// GalleryRenderer draws the pager and the thumbnail strip. Scaled photos are
// cached per result set so scrolling only re-slices cells.
type GalleryRenderer struct {
	styles     *Styles
	painter    painter
	generation uint64
	pages      map[gridKey]cellGrid
	thumbs     map[gridKey]cellGrid

	activeTop    string
	activeBottom string
}

// NewGalleryRenderer creates a gallery renderer using the terminal's color profile
func NewGalleryRenderer(styles *Styles) *GalleryRenderer {
	return &GalleryRenderer{
		styles:       styles,
		painter:      painter{profile: lipgloss.ColorProfile()},
		pages:        make(map[gridKey]cellGrid),
		thumbs:       make(map[gridKey]cellGrid),
		activeTop:    styles.ActiveMark.Render("▁"),
		activeBottom: styles.ActiveMark.Render("▔"),
	}
}

func (g *GalleryRenderer) resetFor(generation uint64) {
	if generation == g.generation {
		return
	}
	g.generation = generation
	g.pages = make(map[gridKey]cellGrid)
	g.thumbs = make(map[gridKey]cellGrid)
}

func stateOf(vs ViewState, id int64) (image.Image, imageState) {
	if img, ok := vs.Images[id]; ok && img != nil {
		return img, imageLoaded
	}
	if vs.FailedImages[id] {
		return nil, imageFailed
	}
	return nil, imagePending
}

func (g *GalleryRenderer) page(vs ViewState, index int) cellGrid {
	photo := vs.Photos[index]
	w, h := vs.Layout.Width, vs.Layout.PagerHeight
	img, st := stateOf(vs, photo.ID)
	key := gridKey{id: photo.ID, w: w, h: h, state: st}
	if grid, ok := g.pages[key]; ok {
		return grid
	}

	var grid cellGrid
	switch st {
	case imageLoaded:
		grid = g.painter.pictureGrid(imaging.Fit(img, w, h), w, h)
	case imageFailed:
		boxW, boxH := placeholderBox(photo, w, h)
		boxW = max(boxW, len(unavailableLabel)+2)
		grid = g.painter.boxGrid(w, h, boxW, boxH, failedGray, unavailableLabel)
	default:
		boxW, boxH := placeholderBox(photo, w, h)
		grid = g.painter.boxGrid(w, h, boxW, boxH, parseAvgColor(photo.AvgColor), "")
	}
	g.pages[key] = grid
	return grid
}

func placeholderBox(photo domain.Photo, w, h int) (int, int) {
	if boxW, boxH := imaging.FitCells(photo.Width, photo.Height, w, h); boxW > 0 {
		return boxW, boxH
	}
	return w, h
}

func (g *GalleryRenderer) thumb(vs ViewState, index int) cellGrid {
	photo := vs.Photos[index]
	w, h := vs.ThumbnailSize, vs.Layout.ThumbRows
	img, st := stateOf(vs, photo.ID)
	key := gridKey{id: photo.ID, w: w, h: h, state: st}
	if grid, ok := g.thumbs[key]; ok {
		return grid
	}

	var grid cellGrid
	switch st {
	case imageLoaded:
		grid = g.painter.pictureGrid(imaging.Cover(img, w, h), w, h)
	case imageFailed:
		grid = g.painter.boxGrid(w, h, w, h, failedGray, "×")
	default:
		grid = g.painter.boxGrid(w, h, w, h, parseAvgColor(photo.AvgColor), "")
	}
	g.thumbs[key] = grid
	return grid
}

// RenderPager returns the pager rows at the current pager offset. Pages are
// laid side by side, each one screen wide.
func (g *GalleryRenderer) RenderPager(vs ViewState) []string {
	g.resetFor(vs.Generation)
	w, h := vs.Layout.Width, vs.Layout.PagerHeight
	lines := make([]string, h)
	if w <= 0 || h <= 0 {
		return lines
	}

	offset := int(math.Round(vs.PagerOffset))
	first := offset / w
	grids := make(map[int]cellGrid, 2)
	for _, p := range []int{first, first + 1} {
		if p >= 0 && p < len(vs.Photos) {
			grids[p] = g.page(vs, p)
		}
	}

	var b strings.Builder
	for y := 0; y < h; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			cx := offset + x
			grid, ok := grids[cx/w]
			if !ok || cx < 0 {
				b.WriteString(" ")
				continue
			}
			b.WriteString(grid[y][cx%w])
		}
		lines[y] = b.String()
	}
	return lines
}

// RenderStrip returns the strip rows: a border row, the thumbnails and a
// second border row. Only the active thumbnail gets the border marks.
func (g *GalleryRenderer) RenderStrip(vs ViewState) []string {
	g.resetFor(vs.Generation)
	w := vs.Layout.Width
	rows := vs.Layout.ThumbRows + 2
	size, spacing := vs.ThumbnailSize, vs.Spacing
	extent := size + spacing
	lines := make([]string, rows)
	if w <= 0 || size <= 0 {
		return lines
	}

	offset := int(math.Round(vs.StripOffset))
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.Reset()
		for x := 0; x < w; x++ {
			cx := offset + x - spacing
			if cx < 0 {
				b.WriteString(" ")
				continue
			}
			index, within := cx/extent, cx%extent
			if index >= len(vs.Photos) || within >= size {
				b.WriteString(" ")
				continue
			}

			switch y {
			case 0:
				if index == vs.ActiveIndex {
					b.WriteString(g.activeTop)
				} else {
					b.WriteString(" ")
				}
			case rows - 1:
				if index == vs.ActiveIndex {
					b.WriteString(g.activeBottom)
				} else {
					b.WriteString(" ")
				}
			default:
				b.WriteString(g.thumb(vs, index)[y-1][within])
			}
		}
		lines[y] = b.String()
	}
	return lines
}
