package bwm

import (
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const jpegQuality = 100

// FromImage converts img into non-premultiplied RGBA planes in [0,1].
func FromImage(img image.Image) *RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := NewRGBA(h, w)

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < h; y += 1 {
			for x := 0; x < w; x += 1 {
				off := src.PixOffset(b.Min.X+x, b.Min.Y+y)
				i := y*w + x
				out.R.data[i] = float32(src.Pix[off+0]) / 255.0
				out.G.data[i] = float32(src.Pix[off+1]) / 255.0
				out.B.data[i] = float32(src.Pix[off+2]) / 255.0
				out.A.data[i] = float32(src.Pix[off+3]) / 255.0
			}
		}
		return out
	}

	for y := 0; y < h; y += 1 {
		for x := 0; x < w; x += 1 {
			c := color.NRGBA64Model.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA64)
			i := y*w + x
			out.R.data[i] = float32(c.R) / 0xffff
			out.G.data[i] = float32(c.G) / 0xffff
			out.B.data[i] = float32(c.B) / 0xffff
			out.A.data[i] = float32(c.A) / 0xffff
		}
	}
	return out
}

func clampU8(v float32) uint8 {
	n := math.Round(float64(v) * 255.0)
	if n < 0 {
		return 0
	}
	if 255 < n {
		return 255
	}
	return uint8(n)
}

// NRGBA rounds the planes to an 8-bit image, clamping out of range samples.
func (p *RGBA) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.Width, p.Height))
	for y := 0; y < p.Height; y += 1 {
		for x := 0; x < p.Width; x += 1 {
			off := img.PixOffset(x, y)
			i := y*p.Width + x
			img.Pix[off+0] = clampU8(p.R.data[i])
			img.Pix[off+1] = clampU8(p.G.data[i])
			img.Pix[off+2] = clampU8(p.B.data[i])
			img.Pix[off+3] = clampU8(p.A.data[i])
		}
	}
	return img
}

func Decode(r io.Reader) (*RGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return FromImage(img), nil
}

func DecodeFile(path string) (*RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return p, nil
}

// Encode writes p in the format named by ext (".png", ".jpg", ".bmp", ".tiff", ...).
func Encode(w io.Writer, ext string, p *RGBA) error {
	img := p.NRGBA()
	switch strings.ToLower(ext) {
	case ".png":
		return errors.WithStack(png.Encode(w, img))
	case ".jpg", ".jpeg":
		return errors.WithStack(jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality}))
	case ".bmp":
		return errors.WithStack(bmp.Encode(w, img))
	case ".tif", ".tiff":
		return errors.WithStack(tiff.Encode(w, img, nil))
	}
	return errors.Wrapf(ErrUnsupportedFormat, "encode %q", ext)
}

// CanEncode reports whether EncodeFile supports the extension of path.
func CanEncode(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

// IsLossless reports whether EncodeFile keeps every 8-bit sample of path's
// format. Lossy formats may erase the watermark.
func IsLossless(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp", ".tif", ".tiff":
		return true
	}
	return false
}

func EncodeFile(path string, p *RGBA) error {
	if CanEncode(path) != true {
		return errors.Wrapf(ErrUnsupportedFormat, "encode %s", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := Encode(f, filepath.Ext(path), p); err != nil {
		f.Close()
		os.Remove(path)
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.WithStack(f.Close())
}
