package views

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"pexview/internal/imaging"
)

const upperHalf = "▀"

// cellGrid holds pre-styled terminal cells, one string per column
type cellGrid [][]string

// painter turns pixels into styled half-block cells for a color profile
type painter struct {
	profile termenv.Profile
}

func (p painter) halfBlock(top, bottom color.Color) string {
	return p.profile.String(upperHalf).
		Foreground(p.profile.FromColor(top)).
		Background(p.profile.FromColor(bottom)).
		String()
}

func (p painter) fill(bg color.Color) string {
	return p.profile.String(" ").Background(p.profile.FromColor(bg)).String()
}

func (p painter) text(s string, fg, bg color.Color) string {
	return p.profile.String(s).
		Foreground(p.profile.FromColor(fg)).
		Background(p.profile.FromColor(bg)).
		String()
}

// blankGrid returns a w x h grid of unstyled spaces
func blankGrid(w, h int) cellGrid {
	grid := make(cellGrid, h)
	for y := range grid {
		row := make([]string, w)
		for x := range row {
			row[x] = " "
		}
		grid[y] = row
	}
	return grid
}

// pictureGrid centres pic inside a w x h box
func (p painter) pictureGrid(pic *imaging.Picture, w, h int) cellGrid {
	grid := blankGrid(w, h)
	if pic == nil {
		return grid
	}
	x0 := (w - pic.Width) / 2
	y0 := (h - pic.Rows()) / 2
	for row := 0; row < pic.Rows(); row++ {
		y := y0 + row
		if y < 0 || y >= h {
			continue
		}
		for col := 0; col < pic.Width; col++ {
			x := x0 + col
			if x < 0 || x >= w {
				continue
			}
			top, bottom := pic.HalfBlock(col, row)
			grid[y][x] = p.halfBlock(top, bottom)
		}
	}
	return grid
}

// boxGrid draws a boxW x boxH block of bg centred in a w x h grid, with an
// optional label on its middle row.
func (p painter) boxGrid(w, h, boxW, boxH int, bg color.Color, label string) cellGrid {
	grid := blankGrid(w, h)
	boxW, boxH = min(boxW, w), min(boxH, h)
	x0 := (w - boxW) / 2
	y0 := (h - boxH) / 2
	cell := p.fill(bg)
	for y := y0; y < y0+boxH; y++ {
		for x := x0; x < x0+boxW; x++ {
			grid[y][x] = cell
		}
	}

	runes := []rune(label)
	if len(runes) == 0 || boxH == 0 {
		return grid
	}
	if len(runes) > boxW {
		runes = runes[:boxW]
	}
	fg := labelColor(bg)
	y := y0 + boxH/2
	x := x0 + (boxW-len(runes))/2
	for i, r := range runes {
		grid[y][x+i] = p.text(string(r), fg, bg)
	}
	return grid
}

// join renders row y of the grid as a single line
func (g cellGrid) join(y int) string {
	if y < 0 || y >= len(g) {
		return ""
	}
	return strings.Join(g[y], "")
}

var (
	placeholderGray = colorful.Color{R: 0.2, G: 0.2, B: 0.2}
	failedGray      = colorful.Color{R: 0.14, G: 0.14, B: 0.14}
)

// parseAvgColor reads a "#rrggbb" colour, falling back to a neutral gray
func parseAvgColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return placeholderGray
	}
	return c
}

// labelColor picks black or white text for readability on bg
func labelColor(bg color.Color) color.Color {
	c, ok := colorful.MakeColor(bg)
	if !ok {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return colorful.Color{}
	}
	return colorful.Color{R: 1, G: 1, B: 1}
}
