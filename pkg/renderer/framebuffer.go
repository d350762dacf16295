package renderer

import (
	"image"
	"image/color"

	"github.com/mixedlight/pathtracer/pkg/core"
)

// Framebuffer accumulates per-pixel radiance across progressive iterations.
// AddColor adds into the existing value; it never overwrites, so averaging
// across iterations is a division at readout time.
type Framebuffer struct {
	width, height int
	pixels        []core.Vec3
}

// NewFramebuffer creates a zeroed framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Vec3, width*height),
	}
}

// AddColor accumulates a color sample into the pixel at (x, y)
func (fb *Framebuffer) AddColor(x, y int, c core.Vec3) {
	fb.pixels[y*fb.width+x] = fb.pixels[y*fb.width+x].Add(c)
}

// Color returns the accumulated color at (x, y)
func (fb *Framebuffer) Color(x, y int) core.Vec3 {
	return fb.pixels[y*fb.width+x]
}

// Size returns the framebuffer dimensions
func (fb *Framebuffer) Size() (int, int) {
	return fb.width, fb.height
}

// ToImage converts the accumulated buffer into an 8-bit image, dividing by
// the iteration count and applying gamma correction
func (fb *Framebuffer) ToImage(iterations int, gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	scale := 1.0
	if iterations > 0 {
		scale = 1.0 / float64(iterations)
	}
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			c := fb.Color(x, y).Multiply(scale).Clamp(0, 1).GammaCorrect(gamma)
			img.Set(x, y, color.RGBA{
				R: uint8(c.X*255.0 + 0.5),
				G: uint8(c.Y*255.0 + 0.5),
				B: uint8(c.Z*255.0 + 0.5),
				A: 255,
			})
		}
	}
	return img
}
