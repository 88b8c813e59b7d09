// Package ui holds the display sink: a canvas image that fills the
// fixed-size window and repaints whenever a new frame arrives.
package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// Viewer owns the displayed frame. Frames arrive fully composited at
// exactly the canvas size, so the image is stretched 1:1.
type Viewer struct {
	image *canvas.Image
}

// NewViewer creates a viewer showing a dark placeholder until the
// first frame lands.
func NewViewer(width, height int) *Viewer {
	placeholder := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			placeholder.Set(x, y, color.RGBA{18, 18, 20, 255})
		}
	}
	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillStretch
	img.SetMinSize(fyne.NewSize(float32(width), float32(height)))
	return &Viewer{image: img}
}

// CanvasObject returns the root object to install as window content.
func (v *Viewer) CanvasObject() fyne.CanvasObject {
	return v.image
}

// SetFrame replaces the displayed frame and repaints. It must be
// called on the Fyne render thread; workers hand frames over through
// fyne.Do.
func (v *Viewer) SetFrame(frame image.Image) {
	v.image.Image = frame
	v.image.Refresh()
}
