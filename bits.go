package bwm

// BytesToBits expands data into bits, least significant bit of each byte first.
func BytesToBits(data []byte) []bool {
	bits := make([]bool, len(data)*8)
	for i, b := range data {
		for j := 0; j < 8; j += 1 {
			bits[i*8+j] = (b>>j)&1 == 1
		}
	}
	return bits
}

// BitsToBytes packs bits LSB first; a trailing partial byte is zero filled.
func BitsToBytes(bits []bool) []byte {
	data := make([]byte, (len(bits)+7)/8)
	for i, bit := range bits {
		if bit {
			data[i/8] |= 1 << (i % 8)
		}
	}
	return data
}

// BitLen is the watermark length in bits needed to extract data.
func BitLen(data []byte) int {
	return len(data) * 8
}
