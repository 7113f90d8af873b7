package bwm

import (
	"math"

	"github.com/pkg/errors"
)

const maxPSNR = 100.0

func channelPSNR(a, b *Plane) float64 {
	mse := 0.0
	for i, v := range a.data {
		d := float64(v-b.data[i]) * 255.0
		mse += d * d
	}
	mse /= float64(len(a.data))
	if mse == 0 {
		return maxPSNR
	}
	return 20 * math.Log10(255.0/math.Sqrt(mse))
}

// PSNR is the mean peak signal-to-noise ratio of R, G and B on an 8-bit scale.
// Identical images report 100.
func PSNR(a, b *RGBA) (float64, error) {
	if err := a.validate(); err != nil {
		return 0, err
	}
	if err := b.validate(); err != nil {
		return 0, err
	}
	if a.Height != b.Height || a.Width != b.Width {
		return 0, errors.Wrapf(ErrDimension, "%dx%d != %dx%d", a.Height, a.Width, b.Height, b.Width)
	}
	if a.Height == 0 || a.Width == 0 {
		return maxPSNR, nil
	}
	r := channelPSNR(a.R, b.R)
	g := channelPSNR(a.G, b.G)
	bl := channelPSNR(a.B, b.B)
	return (r + g + bl) / 3.0, nil
}
