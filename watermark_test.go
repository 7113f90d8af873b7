package bwm

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestCapacity(t *testing.T) {
	tests := []struct {
		h, w, expect int
	}{
		{6, 6, 0},
		{7, 7, 1},
		{8, 8, 1},
		{16, 16, 4},
		{17, 23, 6},
		{64, 64, 64},
	}
	for _, tc := range tests {
		if actual := Capacity(tc.h, tc.w); actual != tc.expect {
			t.Errorf("%dx%d: %d != %d", tc.h, tc.w, actual, tc.expect)
		}
	}
}

func TestEmbedExtract(t *testing.T) {
	tests := []struct {
		name string
		h, w int
		bits string
		opts []Option
	}{
		{"16x16", 16, 16, "0101", nil},
		{"repeated", 32, 32, "1101", nil},
		{"odd size", 17, 23, "10110", nil},
		{"seeded", 32, 32, "10010110", []Option{WithSeed(42)}},
		{"seeded s2", 32, 32, "10010110", []Option{WithSeed(42), WithStrength2(SeededStrength2)}},
		{"strong", 24, 24, "0110", []Option{WithStrength1(64), WithWorkers(1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			wm, err := New(tc.opts...)
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			bits := parseBits(tc.bits)
			out, report, err := wm.EmbedPlanes(testImage(tc.h, tc.w), bits)
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			if out.Height != tc.h || out.Width != tc.w {
				tt.Errorf("%dx%d", out.Height, out.Width)
			}
			if report.Degraded != 0 {
				tt.Errorf("degraded=%d", report.Degraded)
			}
			if report.Layout.Blocks() != Capacity(tc.h, tc.w) {
				tt.Errorf("%d != %d", report.Layout.Blocks(), Capacity(tc.h, tc.w))
			}

			actual, _, err := wm.ExtractPlanes(out, len(bits))
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			if cmp.Equal(actual, bits) != true {
				tt.Errorf("%v != %v", actual, bits)
			}
		})
	}
}

func TestEmbedKeepsAlpha(t *testing.T) {
	src := testImage(16, 16)
	src.A.Set(3, 5, 0.25)
	wm, err := New()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	out, _, err := wm.EmbedPlanes(src, parseBits("1"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if cmp.Equal(out.A.Data(), src.A.Data()) != true {
		t.Errorf("alpha changed")
	}
	psnr, err := PSNR(src, out)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if psnr < 25 {
		t.Errorf("psnr=%v", psnr)
	}
}

func TestEmbedErrors(t *testing.T) {
	wm, err := New()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	t.Run("capacity", func(tt *testing.T) {
		src := testImage(8, 8)
		orig := src.Clone()
		if _, _, err := wm.EmbedPlanes(src, parseBits("0101")); errors.Is(err, ErrCapacity) != true {
			tt.Fatalf("expect ErrCapacity: %v", err)
		}
		for i, p := range []*Plane{src.R, src.G, src.B, src.A} {
			q := []*Plane{orig.R, orig.G, orig.B, orig.A}[i]
			if cmp.Equal(p.Data(), q.Data()) != true {
				tt.Errorf("source plane %d modified", i)
			}
		}
	})
	t.Run("empty", func(tt *testing.T) {
		if _, _, err := wm.EmbedPlanes(testImage(8, 8), nil); errors.Is(err, ErrEmptyWatermark) != true {
			tt.Errorf("expect ErrEmptyWatermark: %v", err)
		}
	})
	t.Run("dimension", func(tt *testing.T) {
		src := testImage(8, 8)
		src.B = NewPlane(4, 4)
		if _, _, err := wm.EmbedPlanes(src, parseBits("1")); errors.Is(err, ErrDimension) != true {
			tt.Errorf("expect ErrDimension: %v", err)
		}
	})
	t.Run("reject remainder", func(tt *testing.T) {
		wm, err := New(WithRemainderPolicy(RemainderReject))
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if _, _, err := wm.EmbedPlanes(testImage(12, 16), parseBits("1")); errors.Is(err, ErrRemainder) != true {
			tt.Errorf("expect ErrRemainder: %v", err)
		}
	})
}

func TestExtractErrors(t *testing.T) {
	wm, err := New()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	t.Run("zero length", func(tt *testing.T) {
		if _, _, err := wm.ExtractPlanes(testImage(16, 16), 0); errors.Is(err, ErrEmptyWatermark) != true {
			tt.Errorf("expect ErrEmptyWatermark: %v", err)
		}
	})
	t.Run("no blocks", func(tt *testing.T) {
		if _, _, err := wm.ExtractPlanes(testImage(4, 4), 1); errors.Is(err, ErrNoBlocks) != true {
			tt.Errorf("expect ErrNoBlocks: %v", err)
		}
	})
	t.Run("longer than blocks", func(tt *testing.T) {
		out, _, err := wm.EmbedPlanes(testImage(8, 8), parseBits("0"))
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		bits, _, err := wm.ExtractPlanes(out, 3)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		expect := parseBits("011")
		if cmp.Equal(bits, expect) != true {
			tt.Errorf("%v != %v", bits, expect)
		}
	})
}

func TestEmbedString(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts []Option
	}{
		{"normal", "hi", nil},
		{"seeded", "ok", []Option{WithSeed(1234), WithStrength2(SeededStrength2)}},
		{"utf8", "é", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(tt *testing.T) {
			wm, err := New(tc.opts...)
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			img, err := wm.EmbedString(testNRGBA(64, 64), tc.text)
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			actual, err := wm.ExtractString(img, BitLen([]byte(tc.text)))
			if err != nil {
				tt.Fatalf("%+v", err)
			}
			if actual != tc.text {
				tt.Errorf("%q != %q", actual, tc.text)
			}
		})
	}
	t.Run("bytes", func(tt *testing.T) {
		wm, err := New()
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		payload := []byte{0x00, 0xff, 0x5a}
		img, err := wm.EmbedBytes(testNRGBA(48, 48), payload)
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		actual, err := wm.ExtractBytes(img, BitLen(payload))
		if err != nil {
			tt.Fatalf("%+v", err)
		}
		if cmp.Equal(actual, payload) != true {
			tt.Errorf("%v != %v", actual, payload)
		}
	})
	t.Run("invalid utf8", func(tt *testing.T) {
		if _, err := decodeString([]byte{0xff, 0xfe}); errors.Is(err, ErrInvalidUTF8) != true {
			tt.Errorf("expect ErrInvalidUTF8: %v", err)
		}
	})
}

func TestNonFiniteSample(t *testing.T) {
	wm, err := New()
	if err != nil {
		t.Fatalf("%+v", err)
	}
	src := testImage(16, 16)
	src.R.Set(0, 0, float32(math.NaN()))

	out, report, err := wm.EmbedPlanes(src, parseBits("1010"))
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if report.Degraded != 3 {
		t.Errorf("embed degraded %d != 3", report.Degraded)
	}

	bits, report, err := wm.ExtractPlanes(out, 4)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if report.Degraded != 3 {
		t.Errorf("extract degraded %d != 3", report.Degraded)
	}
	expect := parseBits("0010")
	if cmp.Equal(bits, expect) != true {
		t.Errorf("%v != %v", bits, expect)
	}
}
