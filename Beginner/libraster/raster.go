// Package libraster renders the triangle on the CPU, reproducing what the
// vertex and fragment shaders do, so frames can be checked without a GPU.
package libraster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ClearColor = color.RGBA{0xff, 0xff, 0xff, 0xff}
	FillColor  = color.RGBA{0xff, 0x00, 0x00, 0xff}
)

// halfScale is the vertex shader's transform: x and y are halved.
var halfScale = mgl32.Scale3D(0.5, 0.5, 1)

// VertexStage maps an attribute position to clip space.
func VertexStage(pos mgl32.Vec3) mgl32.Vec4 {
	return halfScale.Mul4x1(pos.Vec4(1))
}

func FragmentStage() color.RGBA {
	return FillColor
}

// ClipPositions runs the vertex stage over tightly packed xyz triples.
func ClipPositions(vertices []float32) []mgl32.Vec4 {
	clip := make([]mgl32.Vec4, len(vertices)/3)
	for i := range clip {
		clip[i] = VertexStage(mgl32.Vec3{vertices[i*3], vertices[i*3+1], vertices[i*3+2]})
	}
	return clip
}

// Render draws vertices as a triangle list into a width x height image that
// starts out filled with clear. Row 0 of the image is the top of the window.
func Render(vertices []float32, width, height int, clear color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: clear}, image.Point{}, draw.Src)

	clip := ClipPositions(vertices)
	for i := 0; i+2 < len(clip); i += 3 {
		fillTriangle(img,
			toWindow(clip[i], width, height),
			toWindow(clip[i+1], width, height),
			toWindow(clip[i+2], width, height),
		)
	}
	return img
}

// toWindow applies the perspective divide and the full window viewport.
// Window y grows upwards as in GL.
func toWindow(clip mgl32.Vec4, width, height int) mgl32.Vec2 {
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) * float32(width) / 2,
		(ndc.Y() + 1) * float32(height) / 2,
	}
}

// edge is positive when p lies to the left of a->b.
func edge(a, b, p mgl32.Vec2) float32 {
	ab, ap := b.Sub(a), p.Sub(a)
	return ab.X()*ap.Y() - ab.Y()*ap.X()
}

// isTopLeft reports whether a->b is a top or left edge of a counter-clockwise
// triangle in y-up window coordinates.
func isTopLeft(a, b mgl32.Vec2) bool {
	d := b.Sub(a)
	return (d.Y() == 0 && d.X() < 0) || d.Y() < 0
}

func covers(w float32, topLeft bool) bool {
	return w > 0 || (w == 0 && topLeft)
}

func fillTriangle(img *image.RGBA, v0, v1, v2 mgl32.Vec2) {
	area := edge(v0, v1, v2)
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
	}
	tl0, tl1, tl2 := isTopLeft(v1, v2), isTopLeft(v2, v0), isTopLeft(v0, v1)

	height := img.Rect.Dy()
	minX := clampi(int(math32.Floor(math32.Min(v0.X(), math32.Min(v1.X(), v2.X())))), 0, img.Rect.Dx())
	maxX := clampi(int(math32.Ceil(math32.Max(v0.X(), math32.Max(v1.X(), v2.X())))), 0, img.Rect.Dx())
	minY := clampi(int(math32.Floor(math32.Min(v0.Y(), math32.Min(v1.Y(), v2.Y())))), 0, height)
	maxY := clampi(int(math32.Ceil(math32.Max(v0.Y(), math32.Max(v1.Y(), v2.Y())))), 0, height)

	fill := FragmentStage()
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			p := mgl32.Vec2{float32(x) + 0.5, float32(y) + 0.5}
			if covers(edge(v1, v2, p), tl0) && covers(edge(v2, v0, p), tl1) && covers(edge(v0, v1, p), tl2) {
				img.SetRGBA(x, height-1-y, fill)
			}
		}
	}
}

func clampi(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Diff counts the pixels in which a and b differ.
func Diff(a, b *image.RGBA) (int, error) {
	if a.Rect.Dx() != b.Rect.Dx() || a.Rect.Dy() != b.Rect.Dy() {
		return 0, fmt.Errorf("image sizes differ: %v vs %v", a.Rect.Size(), b.Rect.Size())
	}
	n := 0
	for y := 0; y < a.Rect.Dy(); y++ {
		for x := 0; x < a.Rect.Dx(); x++ {
			if a.RGBAAt(a.Rect.Min.X+x, a.Rect.Min.Y+y) != b.RGBAAt(b.Rect.Min.X+x, b.Rect.Min.Y+y) {
				n++
			}
		}
	}
	return n, nil
}
