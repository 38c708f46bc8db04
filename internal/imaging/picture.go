// Package imaging downloads photos and scales them to terminal cell grids.
package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/transform"
)

// Picture is an image scaled for half-block rendering: every terminal cell
// shows two vertically stacked pixels.
type Picture struct {
	Width  int // in cells, equal to pixels
	Height int // in pixels, always even
	img    *image.RGBA
}

// Rows returns the number of terminal rows the picture occupies
func (p *Picture) Rows() int {
	return p.Height / 2
}

// HalfBlock returns the top and bottom pixel of the cell at col,row
func (p *Picture) HalfBlock(col, row int) (top, bottom color.RGBA) {
	b := p.img.Bounds()
	top = p.img.RGBAAt(b.Min.X+col, b.Min.Y+row*2)
	bottom = p.img.RGBAAt(b.Min.X+col, b.Min.Y+row*2+1)
	return top, bottom
}

// Fit scales img to fit inside cols x rows cells keeping its aspect ratio.
// It returns nil when the box or the image is empty.
func Fit(img image.Image, cols, rows int) *Picture {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	w, h := fitSize(b.Dx(), b.Dy(), cols, rows*2)
	// Rounding to an even height keeps the last cell row fully backed
	if h%2 == 1 {
		h++
		if h > rows*2 {
			h -= 2
		}
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	return &Picture{
		Width:  w,
		Height: h,
		img:    transform.Resize(img, w, h, transform.Linear),
	}
}

// Cover scales img to fill exactly cols x rows cells, cropping the overflow
// around the centre. Used for square thumbnails.
func Cover(img image.Image, cols, rows int) *Picture {
	if img == nil || cols <= 0 || rows <= 0 {
		return nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil
	}

	targetW, targetH := cols, rows*2
	scale := max(float64(targetW)/float64(b.Dx()), float64(targetH)/float64(b.Dy()))
	w := max(targetW, int(float64(b.Dx())*scale+0.5))
	h := max(targetH, int(float64(b.Dy())*scale+0.5))

	scaled := transform.Resize(img, w, h, transform.Linear)
	x0 := (w - targetW) / 2
	y0 := (h - targetH) / 2
	cropped := transform.Crop(scaled, image.Rect(x0, y0, x0+targetW, y0+targetH))

	return &Picture{Width: targetW, Height: targetH, img: cropped}
}

// fitSize returns the largest w,h with the aspect of srcW:srcH inside maxW x maxH
func fitSize(srcW, srcH, maxW, maxH int) (int, int) {
	scale := min(float64(maxW)/float64(srcW), float64(maxH)/float64(srcH))
	w := int(float64(srcW)*scale + 0.5)
	h := int(float64(srcH)*scale + 0.5)
	return min(max(w, 1), maxW), min(max(h, 1), maxH)
}

// FitCells returns the cell box Fit produces for a srcW x srcH image, so a
// placeholder can take the shape of a photo that has not loaded yet.
func FitCells(srcW, srcH, cols, rows int) (int, int) {
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	w, h := fitSize(srcW, srcH, cols, rows*2)
	return w, max(h/2, 1)
}
