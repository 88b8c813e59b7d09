// Package compose turns raw image bytes and a quote into a finished
// canvas-sized frame: cover-scale and center-crop the photo, darken it
// for contrast, then draw the wrapped quote and author with drop
// shadows.
package compose

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/gift"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// CanvasSpec is the fixed target size of every frame.
type CanvasSpec struct {
	Width, Height int
}

const (
	// Overlay alpha matches compositing solid black at 100/255 over
	// the photo.
	overlayAlpha = 100.0 / 255.0

	shadowOffsetLarge = 2.0
	shadowOffsetSmall = 1.0
)

// Render produces a frame exactly spec-sized, or an error if the image
// bytes cannot be decoded. It never panics on odd text input: an empty
// quote still lays out, and over-long words are left unbroken.
func Render(data []byte, text, author string, spec CanvasSpec) (image.Image, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	frame := coverScale(src, spec)
	frame = darken(frame)

	fonts := Fonts()
	dc := gg.NewContextForRGBA(frame)

	measure := func(s string, small bool) (float64, float64) {
		if small {
			dc.SetFontFace(fonts.Small)
		} else {
			dc.SetFontFace(fonts.Large)
		}
		return dc.MeasureString(s)
	}

	lines := Wrap(text, MaxChars(spec.Width))
	for _, l := range layoutLines(lines, author, spec, measure) {
		offset := shadowOffsetLarge
		if l.small {
			dc.SetFontFace(fonts.Small)
			offset = shadowOffsetSmall
		} else {
			dc.SetFontFace(fonts.Large)
		}

		dc.SetRGBA255(0, 0, 0, 160)
		dc.DrawStringAnchored(l.text, l.x+offset, l.y+offset, 0, 1)
		if l.small {
			dc.SetRGBA255(220, 220, 220, 255)
		} else {
			dc.SetRGBA255(255, 255, 255, 255)
		}
		dc.DrawStringAnchored(l.text, l.x, l.y, 0, 1)
	}

	return dc.Image(), nil
}

// coverScale scales src so it fully covers the canvas and center-crops
// the excess: if the image is proportionally wider than the canvas it
// is scaled by height (cropping width), otherwise by width. The result
// is always exactly spec-sized with no letterbox bars.
func coverScale(src image.Image, spec CanvasSpec) *image.RGBA {
	srcBounds := src.Bounds()
	srcAspect := float64(srcBounds.Dx()) / float64(srcBounds.Dy())
	dstAspect := float64(spec.Width) / float64(spec.Height)

	var scaledW, scaledH int
	if srcAspect > dstAspect {
		scaledH = spec.Height
		scaledW = int(float64(spec.Height) * srcAspect)
	} else {
		scaledW = spec.Width
		scaledH = int(float64(spec.Width) / srcAspect)
	}

	frame := image.NewRGBA(image.Rect(0, 0, spec.Width, spec.Height))
	offsetX := (spec.Width - scaledW) / 2
	offsetY := (spec.Height - scaledH) / 2
	draw.CatmullRom.Scale(frame,
		image.Rect(offsetX, offsetY, offsetX+scaledW, offsetY+scaledH),
		src, srcBounds, draw.Src, nil)
	return frame
}

// darken applies the uniform translucent dark overlay that guarantees
// legible text contrast regardless of photo brightness.
func darken(frame *image.RGBA) *image.RGBA {
	k := float32(1 - overlayAlpha)
	g := gift.New(gift.ColorFunc(func(r, gr, b, a float32) (float32, float32, float32, float32) {
		return r * k, gr * k, b * k, a
	}))
	out := image.NewRGBA(g.Bounds(frame.Bounds()))
	g.Draw(out, frame)
	return out
}
