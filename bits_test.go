package bwm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBits(t *testing.T) {
	t.Run("lsb first", func(tt *testing.T) {
		actual := BytesToBits([]byte{0x05, 0x80})
		expect := parseBits("1010000000000001")
		if cmp.Equal(actual, expect) != true {
			tt.Errorf("%v != %v", actual, expect)
		}
	})
	t.Run("roundtrip", func(tt *testing.T) {
		data := []byte("watermark")
		bits := BytesToBits(data)
		if len(bits) != BitLen(data) {
			tt.Errorf("%d != %d", len(bits), BitLen(data))
		}
		if actual := BitsToBytes(bits); cmp.Equal(actual, data) != true {
			tt.Errorf("%v != %v", actual, data)
		}
	})
	t.Run("partial byte", func(tt *testing.T) {
		actual := BitsToBytes(parseBits("111111111"))
		expect := []byte{0xff, 0x01}
		if cmp.Equal(actual, expect) != true {
			tt.Errorf("%v != %v", actual, expect)
		}
	})
}
