package bwm

import (
	"github.com/pkg/errors"
)

// EmbedFile reads in, embeds bits and writes the result to out.
// Nothing is written when embedding fails.
func (w *Watermarker) EmbedFile(in, out string, bits []bool) (*Report, error) {
	if CanEncode(out) != true {
		return nil, errors.Wrapf(ErrUnsupportedFormat, "encode %s", out)
	}
	src, err := DecodeFile(in)
	if err != nil {
		return nil, err
	}
	dst, report, err := w.EmbedPlanes(src, bits)
	if err != nil {
		return nil, errors.Wrapf(err, "embed %s", in)
	}
	if err := EncodeFile(out, dst); err != nil {
		return nil, err
	}
	return report, nil
}

func (w *Watermarker) ExtractFile(in string, wmLen int) ([]bool, error) {
	src, err := DecodeFile(in)
	if err != nil {
		return nil, err
	}
	bits, _, err := w.ExtractPlanes(src, wmLen)
	if err != nil {
		return nil, errors.Wrapf(err, "extract %s", in)
	}
	return bits, nil
}

func (w *Watermarker) EmbedStringFile(in, out string, s string) (*Report, error) {
	return w.EmbedFile(in, out, BytesToBits([]byte(s)))
}

func (w *Watermarker) ExtractStringFile(in string, wmLen int) (string, error) {
	bits, err := w.ExtractFile(in, wmLen)
	if err != nil {
		return "", err
	}
	return decodeString(BitsToBytes(bits))
}
