package capture

import (
	"image"
	"image/color"
	"image/draw"
)

const (
	// MaxOutputWidth bounds the composited frame so an oversized source frame
	// never inflates the recording.
	MaxOutputWidth = 1920

	pipWidthRatio = 0.22
	pipMargin     = 16
	platePadding  = 8
)

var plateColor = color.NRGBA{R: 0, G: 0, B: 0, A: 160}

// Composite renders one output frame: the source scaled down to the output
// width with the camera picture-in-picture at the bottom-right over a
// semi-opaque plate. A nil camera frame yields the scaled source alone.
func Composite(src image.Image, cam image.Image) *image.RGBA {
	srcBounds := src.Bounds()
	outW := srcBounds.Dx()
	outH := srcBounds.Dy()
	if outW > MaxOutputWidth {
		outH = outH * MaxOutputWidth / outW
		outW = MaxOutputWidth
	}

	out := image.NewRGBA(image.Rect(0, 0, outW, outH))
	drawScaled(out, out.Bounds(), src)

	if cam == nil {
		return out
	}

	camBounds := cam.Bounds()
	if camBounds.Dx() == 0 || camBounds.Dy() == 0 {
		return out
	}

	pipW := int(float64(outW) * pipWidthRatio)
	pipH := pipW * camBounds.Dy() / camBounds.Dx()
	pipRect := image.Rect(
		outW-pipMargin-pipW,
		outH-pipMargin-pipH,
		outW-pipMargin,
		outH-pipMargin,
	)

	plate := pipRect.Inset(-platePadding)
	draw.Draw(out, plate.Intersect(out.Bounds()), image.NewUniform(plateColor), image.Point{}, draw.Over)
	drawScaled(out, pipRect, cam)

	return out
}

// drawScaled paints src into dst's rect with nearest-neighbor scaling. Quality
// is secondary here: the compositor runs 30 times a second and the output is
// re-encoded by the recorder anyway.
func drawScaled(dst *image.RGBA, rect image.Rectangle, src image.Image) {
	srcBounds := src.Bounds()
	w := rect.Dx()
	h := rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	for y := 0; y < h; y++ {
		sy := srcBounds.Min.Y + y*srcBounds.Dy()/h
		for x := 0; x < w; x++ {
			sx := srcBounds.Min.X + x*srcBounds.Dx()/w
			dst.Set(rect.Min.X+x, rect.Min.Y+y, src.At(sx, sy))
		}
	}
}
