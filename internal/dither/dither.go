package dither

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/pixelforge/dither/internal/bayer"
)

// FitDimensions returns the output size for an image of the given dimensions
// constrained to maxSide on its longer edge. Images already within bounds are
// left at their original size (the scale factor is capped at 1.0, never
// upscaling). Each returned dimension is at least 1.
func FitDimensions(width, height, maxSide int) (int, int) {
	longest := width
	if height > longest {
		longest = height
	}

	scale := 1.0
	if longest > maxSide {
		scale = float64(maxSide) / float64(longest)
	}

	w := int(math.Round(float64(width) * scale))
	h := int(math.Round(float64(height) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// Downscale resizes img so its longer edge is at most maxSide, using the
// Lanczos filter. Images already within bounds are returned as an unmodified
// copy.
func Downscale(img image.Image, maxSide int) *image.NRGBA {
	bounds := img.Bounds()
	w, h := FitDimensions(bounds.Dx(), bounds.Dy(), maxSide)
	if w == bounds.Dx() && h == bounds.Dy() {
		return imaging.Clone(img)
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Sharpen applies a mild sharpening pass to counteract the mid-frequency
// detail loss inherent to ordered dithering. Intended to run before Render.
func Sharpen(img image.Image) image.Image {
	return effect.Sharpen(img)
}

// Quantize converts a color image to a binary grayscale image by comparing
// each pixel's BT.601 luminance against the tiled Bayer matrix threshold.
// Pixels strictly brighter than their threshold become white (255), all
// others black (0). The output has the same dimensions as the input and is
// always zero-origin, wherever the input's bounds start.
func Quantize(img *image.NRGBA, m *bayer.Matrix) *image.Gray {
	bounds := img.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	out := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
		for x := 0; x < w; x++ {
			px := row[x*4 : x*4+3 : x*4+3]
			gray := int(0.299*float64(px[0]) + 0.587*float64(px[1]) + 0.114*float64(px[2]))

			var v uint8
			if gray > m.Threshold(x, y) {
				v = 255
			}
			out.Pix[y*out.Stride+x] = v
		}
	}
	return out
}

// Render runs the full engine on a decoded image: downscale to maxSide, then
// quantize against the matrix. The source image is not modified.
func Render(img image.Image, m *bayer.Matrix, maxSide int) *image.Gray {
	return Quantize(Downscale(img, maxSide), m)
}
