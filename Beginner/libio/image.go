package libio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// FromFramebuffer wraps RGBA8 pixels read back from GL. GL rows run bottom
// to top, image rows top to bottom, so rows are flipped.
func FromFramebuffer(pix []byte, width, height int) (*image.RGBA, error) {
	stride := width * 4
	if len(pix) != stride*height {
		return nil, fmt.Errorf("framebuffer has %d bytes, want %d for %dx%d", len(pix), stride*height, width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		src := pix[(height-1-y)*stride : (height-y)*stride]
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], src)
	}
	return img, nil
}

// EncodeImage writes img as PNG, wrapped in an LZ4 frame when compress is set.
func EncodeImage(w io.Writer, img image.Image, compress bool) error {
	if !compress {
		return png.Encode(w, img)
	}
	lzw := lz4.NewWriter(w)
	if err := lzw.Apply(lz4.CompressionLevelOption(lz4.Level9)); err != nil {
		return err
	}
	if err := png.Encode(lzw, img); err != nil {
		return err
	}
	return lzw.Close()
}

func DecodeImage(r io.Reader, compressed bool) (image.Image, error) {
	if compressed {
		r = lz4.NewReader(r)
	}
	return png.Decode(r)
}

// WriteImageFile picks compression from the file name: a ".lz4" suffix
// compresses.
func WriteImageFile(filename string, img image.Image) error {
	file, err := os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not create image file %q: %w", filename, err)
	}
	err = EncodeImage(file, img, strings.HasSuffix(filename, ".lz4"))
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("could not write image file %q: %w", filename, err)
	}
	return nil
}

func ReadImageFile(filename string) (image.Image, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open image file %q: %w", filename, err)
	}
	defer file.Close()

	img, err := DecodeImage(file, strings.HasSuffix(filename, ".lz4"))
	if err != nil {
		return nil, fmt.Errorf("could not decode image file %q: %w", filename, err)
	}
	return img, nil
}
