package libio_test

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"beginner-gl/Beginner/libio"
	"beginner-gl/Beginner/libraster"
)

func TestFromFramebufferFlipsRows(t *testing.T) {
	// 1x2 framebuffer: bottom row red, top row white.
	pix := []byte{
		0xff, 0x00, 0x00, 0xff,
		0xff, 0xff, 0xff, 0xff,
	}
	img, err := libio.FromFramebuffer(pix, 1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Errorf("image row 0 should be the top framebuffer row, got %v", got)
	}
	if got := img.RGBAAt(0, 1); got != (color.RGBA{0xff, 0x00, 0x00, 0xff}) {
		t.Errorf("image row 1 should be the bottom framebuffer row, got %v", got)
	}

	if _, err := libio.FromFramebuffer(pix, 2, 2); err == nil {
		t.Error("a short framebuffer should be rejected")
	}
}

func TestEncodeCompressed(t *testing.T) {
	img := libraster.Render([]float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}, 160, 120, libraster.ClearColor)

	var plain, packed bytes.Buffer
	if err := libio.EncodeImage(&plain, img, false); err != nil {
		t.Fatal(err)
	}
	if err := libio.EncodeImage(&packed, img, true); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(plain.Bytes(), packed.Bytes()) {
		t.Fatal("compressed output should differ from plain PNG")
	}

	decoded, err := libio.DecodeImage(&packed, true)
	if err != nil {
		t.Fatal(err)
	}
	assertSame(t, img, decoded)
}

func TestImageFile(t *testing.T) {
	img := libraster.Render([]float32{-1, -1, 0, 1, -1, 0, 0, 1, 0}, 32, 24, libraster.ClearColor)
	for _, name := range []string{"frame.png", "frame.png.lz4"} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), name)
			if err := libio.WriteImageFile(filename, img); err != nil {
				t.Fatal(err)
			}
			decoded, err := libio.ReadImageFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			assertSame(t, img, decoded)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := libio.ReadImageFile(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("reading a missing file should fail")
	}
}

func assertSame(t *testing.T, want *image.RGBA, got image.Image) {
	t.Helper()
	if got.Bounds() != want.Bounds() {
		t.Fatalf("bounds should be %v but are %v", want.Bounds(), got.Bounds())
	}
	for y := want.Rect.Min.Y; y < want.Rect.Max.Y; y++ {
		for x := want.Rect.Min.X; x < want.Rect.Max.X; x++ {
			if color.RGBAModel.Convert(got.At(x, y)) != want.RGBAAt(x, y) {
				t.Fatalf("pixel (%d, %d) should be %v but is %v", x, y, want.RGBAAt(x, y), got.At(x, y))
			}
		}
	}
}
