package bwm

import (
	"image"
)

// testImage is a smooth, saturated image whose samples stay away from 0 and 1.
func testImage(height, width int) *RGBA {
	p := NewRGBA(height, width)
	for y := 0; y < height; y += 1 {
		for x := 0; x < width; x += 1 {
			p.R.Set(y, x, 0.8)
			p.G.Set(y, x, 0.3+0.1*float32(x)/float32(width))
			p.B.Set(y, x, 0.2+0.05*float32(y)/float32(height))
			p.A.Set(y, x, 1.0)
		}
	}
	return p
}

func testNRGBA(height, width int) *image.NRGBA {
	return testImage(height, width).NRGBA()
}

func parseBits(s string) []bool {
	bits := make([]bool, len(s))
	for i, c := range s {
		bits[i] = c == '1'
	}
	return bits
}
