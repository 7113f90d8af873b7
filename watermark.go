package bwm

import (
	"image"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Capacity returns the number of bits an image of the given size can hold.
func Capacity(height, width int) int {
	return ((height + 1) / 2 / BlockSize) * ((width + 1) / 2 / BlockSize)
}

type Watermarker struct {
	cfg *Config
}

func New(opts ...Option) (*Watermarker, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Watermarker{cfg: cfg}, nil
}

func NewWithConfig(cfg *Config) (*Watermarker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := *cfg
	return &Watermarker{cfg: &c}, nil
}

func (w *Watermarker) Config() Config {
	return *w.cfg
}

func (w *Watermarker) blocked(src *RGBA) (*Blocked, error) {
	m, err := ToYCbCrA(src)
	if err != nil {
		return nil, err
	}
	p, err := m.Pad()
	if err != nil {
		return nil, err
	}
	d, err := p.Decompose()
	if err != nil {
		return nil, err
	}
	return d.Cut(w.cfg.Remainder)
}

// EmbedPlanes returns a watermarked copy of src; src itself is never modified.
func (w *Watermarker) EmbedPlanes(src *RGBA, bits []bool) (*RGBA, *Report, error) {
	if err := src.validate(); err != nil {
		return nil, nil, err
	}
	if len(bits) == 0 {
		return nil, nil, errors.WithStack(ErrEmptyWatermark)
	}
	if n := Capacity(src.Height, src.Width); n < len(bits) {
		return nil, nil, errors.Wrapf(ErrCapacity, "%d bits > %d blocks", len(bits), n)
	}

	b, err := w.blocked(src)
	if err != nil {
		return nil, nil, err
	}
	layout := b.Layout
	e, degraded, err := b.Embed(bits, w.cfg)
	if err != nil {
		return nil, nil, err
	}
	a, err := e.Assemble()
	if err != nil {
		return nil, nil, err
	}
	p, err := a.Reconstruct()
	if err != nil {
		return nil, nil, err
	}
	m, err := p.Unpad()
	if err != nil {
		return nil, nil, err
	}
	out, err := m.ToRGBA()
	if err != nil {
		return nil, nil, err
	}
	return out, &Report{Layout: layout, Degraded: degraded}, nil
}

func (w *Watermarker) ExtractPlanes(src *RGBA, wmLen int) ([]bool, *Report, error) {
	if wmLen < 1 {
		return nil, nil, errors.Wrapf(ErrEmptyWatermark, "length=%d", wmLen)
	}
	b, err := w.blocked(src)
	if err != nil {
		return nil, nil, err
	}
	layout := b.Layout
	bits, degraded, err := b.Extract(wmLen, w.cfg)
	if err != nil {
		return nil, nil, err
	}
	return bits, &Report{Layout: layout, Degraded: degraded}, nil
}

func (w *Watermarker) Embed(img image.Image, bits []bool) (*image.NRGBA, error) {
	out, _, err := w.EmbedPlanes(FromImage(img), bits)
	if err != nil {
		return nil, err
	}
	return out.NRGBA(), nil
}

func (w *Watermarker) Extract(img image.Image, wmLen int) ([]bool, error) {
	bits, _, err := w.ExtractPlanes(FromImage(img), wmLen)
	return bits, err
}

func (w *Watermarker) EmbedBytes(img image.Image, payload []byte) (*image.NRGBA, error) {
	return w.Embed(img, BytesToBits(payload))
}

// ExtractBytes reads wmLen bits and packs them LSB first.
func (w *Watermarker) ExtractBytes(img image.Image, wmLen int) ([]byte, error) {
	bits, err := w.Extract(img, wmLen)
	if err != nil {
		return nil, err
	}
	return BitsToBytes(bits), nil
}

func (w *Watermarker) EmbedString(img image.Image, s string) (*image.NRGBA, error) {
	return w.EmbedBytes(img, []byte(s))
}

func (w *Watermarker) ExtractString(img image.Image, wmLen int) (string, error) {
	data, err := w.ExtractBytes(img, wmLen)
	if err != nil {
		return "", err
	}
	return decodeString(data)
}

func decodeString(data []byte) (string, error) {
	if utf8.Valid(data) != true {
		return "", errors.WithStack(ErrInvalidUTF8)
	}
	return string(data), nil
}
