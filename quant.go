package bwm

import (
	"math"
)

const (
	quantScale = 255.0

	lowerQuarter = 0.25
	upperQuarter = 0.75

	primaryWeight   = 0.75
	secondaryWeight = 0.25
)

// quantize snaps v onto the lower or upper quarter of its step-sized cell.
func quantize(v float64, bit bool, step int) float64 {
	s := float64(step)
	offset := lowerQuarter
	if bit {
		offset = upperQuarter
	}
	return (math.Floor(v*quantScale/s) + offset) * s / quantScale
}

func dequantize(v float64, step int) bool {
	s := float64(step)
	r := math.Mod(v*quantScale, s)
	if r < 0 {
		r += s
	}
	return s/2 < r
}

func combineBits(primary, secondary bool) bool {
	score := 0.0
	if primary {
		score += primaryWeight
	}
	if secondary {
		score += secondaryWeight
	}
	return 0.5 <= score
}
