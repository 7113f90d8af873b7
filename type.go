package bwm

import (
	"github.com/pkg/errors"
)

type Float interface {
	~float32 | ~float64
}

// RGBA holds the four channel planes of an image, each in range [0,1].
type RGBA struct {
	Height, Width int
	R, G, B, A    *Plane
}

func NewRGBA(height, width int) *RGBA {
	return &RGBA{
		Height: height,
		Width:  width,
		R:      NewPlane(height, width),
		G:      NewPlane(height, width),
		B:      NewPlane(height, width),
		A:      NewPlane(height, width),
	}
}

func (p *RGBA) Clone() *RGBA {
	return &RGBA{
		Height: p.Height,
		Width:  p.Width,
		R:      p.R.Clone(),
		G:      p.G.Clone(),
		B:      p.B.Clone(),
		A:      p.A.Clone(),
	}
}

func (p *RGBA) validate() error {
	for _, c := range []*Plane{p.R, p.G, p.B, p.A} {
		if c == nil || c.Rows() != p.Height || c.Cols() != p.Width {
			return errors.Wrapf(ErrDimension, "expect %dx%d planes", p.Height, p.Width)
		}
	}
	return nil
}

// Layout describes how an image maps onto watermark blocks.
type Layout struct {
	Height, Width             int
	PaddedHeight, PaddedWidth int
	BlockRows, BlockCols      int
	RemainderRows             int
	RemainderCols             int
}

func (l Layout) Blocks() int {
	return l.BlockRows * l.BlockCols
}

type Report struct {
	Layout   Layout
	Degraded int
}
