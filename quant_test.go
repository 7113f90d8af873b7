package bwm

import (
	"testing"
)

func TestQuantize(t *testing.T) {
	t.Run("known", func(tt *testing.T) {
		// 1.0*255/36 = 7.08, cell 7
		if v := quantize(1.0, true, 36); v != 7.75*36/255 {
			tt.Errorf("%v != %v", v, 7.75*36/255)
		}
		if v := quantize(1.0, false, 36); v != 7.25*36/255 {
			tt.Errorf("%v != %v", v, 7.25*36/255)
		}
	})
	for _, step := range []int{1, 20, 36, 64} {
		t.Run("roundtrip", func(tt *testing.T) {
			for i := 0; i < 200; i += 1 {
				v := float64(i) * 0.037
				for _, bit := range []bool{true, false} {
					if actual := dequantize(quantize(v, bit, step), step); actual != bit {
						tt.Errorf("step=%d v=%v bit=%v", step, v, bit)
					}
				}
			}
		})
	}
	t.Run("margin", func(tt *testing.T) {
		// a perturbation below step/4 on the 255 scale keeps the bit
		q := quantize(2.0, true, 36)
		for _, d := range []float64{-8.9, 8.9} {
			if dequantize(q+d/255, 36) != true {
				tt.Errorf("d=%v", d)
			}
		}
		q = quantize(2.0, false, 36)
		for _, d := range []float64{-8.9, 8.9} {
			if dequantize(q+d/255, 36) != false {
				tt.Errorf("d=%v", d)
			}
		}
	})
	t.Run("negative", func(tt *testing.T) {
		if dequantize(-1.0/255, 36) != true {
			tt.Errorf("-1 mod 36 is 35")
		}
	})
}

func TestCombineBits(t *testing.T) {
	tests := []struct {
		primary, secondary, expect bool
	}{
		{true, true, true},
		{true, false, true},
		{false, true, false},
		{false, false, false},
	}
	for _, tc := range tests {
		if actual := combineBits(tc.primary, tc.secondary); actual != tc.expect {
			t.Errorf("%v,%v: %v != %v", tc.primary, tc.secondary, actual, tc.expect)
		}
	}
}
