// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package images

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// RotateImage rotates the image clockwise by angle degrees.
// The canvas is expanded so that none of the image is cropped.
// Multiples of 90 degrees are an exact pixel remap that keeps the
// pixel format of the source; other angles are resampled onto a
// transparent RGBA canvas.
func RotateImage(img image.Image, angle float64) image.Image {
	angle = math.Mod(angle, 360)
	if angle < 0 {
		angle += 360
	}
	switch angle {
	case 0:
		return img
	case 90:
		return quarterTurn(img, 1)
	case 180:
		return quarterTurn(img, 2)
	case 270:
		return quarterTurn(img, 3)
	}
	return rotateCanvas(img, angle)
}

// NewLike returns an empty image of size r using the same pixel
// format as img. Formats without a lossless counterpart use NRGBA.
func NewLike(img image.Image, r image.Rectangle) draw.Image {
	switch src := img.(type) {
	case *image.Gray:
		return image.NewGray(r)
	case *image.Gray16:
		return image.NewGray16(r)
	case *image.RGBA:
		return image.NewRGBA(r)
	case *image.RGBA64:
		return image.NewRGBA64(r)
	case *image.NRGBA64:
		return image.NewNRGBA64(r)
	case *image.Alpha:
		return image.NewAlpha(r)
	case *image.Alpha16:
		return image.NewAlpha16(r)
	case *image.Paletted:
		return image.NewPaletted(r, src.Palette)
	}
	return image.NewNRGBA(r)
}

// quarterTurn rotates clockwise by n * 90 degrees.
func quarterTurn(img image.Image, n int) draw.Image {
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	r := image.Rect(0, 0, w, h)
	if n%2 == 1 {
		r = image.Rect(0, 0, h, w)
	}
	dst := NewLike(img, r)
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			var sx, sy int
			switch n {
			case 1:
				sx, sy = y, h-1-x
			case 2:
				sx, sy = w-1-x, h-1-y
			case 3:
				sx, sy = w-1-y, x
			}
			dst.Set(x, y, img.At(b.Min.X+sx, b.Min.Y+sy))
		}
	}
	return dst
}

// CanvasSize returns the size of the canvas holding a w x h image
// rotated by angle degrees.
func CanvasSize(w, h int, angle float64) (int, int) {
	r := gg.Radians(angle)
	c := math.Abs(math.Cos(r))
	s := math.Abs(math.Sin(r))
	fw := float64(w)
	fh := float64(h)
	// Trim float noise so exact fits do not grow by a pixel.
	const eps = 1e-9
	return int(math.Ceil(fw*c + fh*s - eps)), int(math.Ceil(fw*s + fh*c - eps))
}

// Rotate the image on a canvas sized to the rotated bounding box.
// The image centre and the pivot are both the exact canvas centre.
func rotateCanvas(img image.Image, angle float64) image.Image {
	b := img.Bounds()
	width, height := CanvasSize(b.Dx(), b.Dy(), angle)
	c := gg.NewContext(width, height)
	cx := float64(width) / 2
	cy := float64(height) / 2
	c.RotateAbout(gg.Radians(angle), cx, cy)
	// gg maps source coordinates, so remove the source origin too.
	c.Translate(cx-float64(b.Dx())/2-float64(b.Min.X), cy-float64(b.Dy())/2-float64(b.Min.Y))
	c.DrawImage(img, 0, 0)
	return c.Image()
}
