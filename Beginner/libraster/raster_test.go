package libraster_test

import (
	"image"
	"image/color"
	"testing"

	"beginner-gl/Beginner/libraster"

	"github.com/go-gl/mathgl/mgl32"
)

var triangle = []float32{
	-1, -1, 0,
	1, -1, 0,
	0, 1, 0,
}

func TestClipPositions(t *testing.T) {
	want := []mgl32.Vec4{
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
		{0, 0.5, 0, 1},
	}
	got := libraster.ClipPositions(triangle)
	if len(got) != len(want) {
		t.Fatalf("expected %d positions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vertex %d should map to %v but maps to %v", i, want[i], got[i])
		}
	}
}

func TestRenderTriangle(t *testing.T) {
	img := libraster.Render(triangle, 800, 600, libraster.ClearColor)

	// Image rows count from the top; window row r is image row 599-r.
	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"centre", 400, 300, libraster.FillColor},
		{"just above bottom edge", 400, 449, libraster.FillColor},
		{"just below bottom edge", 400, 450, libraster.ClearColor},
		{"near apex", 400, 151, libraster.FillColor},
		{"above apex", 400, 148, libraster.ClearColor},
		{"left of left edge", 220, 400, libraster.ClearColor},
		{"inside bottom left", 210, 448, libraster.FillColor},
		{"top left corner", 0, 0, libraster.ClearColor},
		{"bottom right corner", 799, 599, libraster.ClearColor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d, %d) should be %v but is %v", tt.x, tt.y, tt.want, got)
			}
		})
	}
}

func TestRenderOnlyTwoColors(t *testing.T) {
	img := libraster.Render(triangle, 800, 600, libraster.ClearColor)

	filled := 0
	for y := 0; y < 600; y++ {
		for x := 0; x < 800; x++ {
			switch img.RGBAAt(x, y) {
			case libraster.FillColor:
				filled++
			case libraster.ClearColor:
			default:
				t.Fatalf("pixel (%d, %d) has unexpected color %v", x, y, img.RGBAAt(x, y))
			}
		}
	}
	// The triangle spans 400x300 window pixels.
	if filled < 59500 || filled > 60500 {
		t.Errorf("about 60000 pixels should be filled, got %d", filled)
	}
}

func TestRenderSharedEdgeOnce(t *testing.T) {
	// Two triangles splitting the screen along a diagonal leave no gaps on
	// the shared edge.
	quad := []float32{
		-2, -2, 0, 2, -2, 0, 2, 2, 0,
		-2, -2, 0, 2, 2, 0, -2, 2, 0,
	}
	img := libraster.Render(quad, 64, 64, libraster.ClearColor)
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if img.RGBAAt(x, y) != libraster.FillColor {
				t.Fatalf("pixel (%d, %d) of a full screen quad was not filled", x, y)
			}
		}
	}
}

func TestRenderDegenerate(t *testing.T) {
	line := []float32{0, 0, 0, 1, 1, 0, -1, -1, 0}
	img := libraster.Render(line, 16, 16, libraster.ClearColor)
	n, err := libraster.Diff(img, libraster.Render(nil, 16, 16, libraster.ClearColor))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("a zero area triangle should not fill pixels, filled %d", n)
	}
}

func TestDiff(t *testing.T) {
	a := libraster.Render(triangle, 80, 60, libraster.ClearColor)
	b := libraster.Render(triangle, 80, 60, libraster.ClearColor)
	if n, err := libraster.Diff(a, b); err != nil || n != 0 {
		t.Fatalf("identical renders should not differ, got %d, %v", n, err)
	}

	b.SetRGBA(0, 0, color.RGBA{0, 0, 0, 0xff})
	b.SetRGBA(40, 30, libraster.ClearColor)
	if n, _ := libraster.Diff(a, b); n != 2 {
		t.Errorf("expected 2 differing pixels, got %d", n)
	}

	if _, err := libraster.Diff(a, image.NewRGBA(image.Rect(0, 0, 10, 10))); err == nil {
		t.Error("images of different size should not compare")
	}
}
