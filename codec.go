package bwm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

type svdFunc func(a mat.Matrix, kind mat.SVDKind) (*mat.SVD, bool)

// factorize reports ok == false instead of panicking when lapack rejects
// the input, e.g. a block holding NaN or Inf.
func factorize(a mat.Matrix, kind mat.SVDKind) (svd *mat.SVD, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			svd, ok = nil, false
		}
	}()
	svd = new(mat.SVD)
	ok = svd.Factorize(a, kind)
	return svd, ok
}

// blockCodec embeds and reads one bit per block through the singular
// values of the block's DCT.
type blockCodec struct {
	strength1 int
	strength2 int
	svd       svdFunc
}

func newBlockCodec(cfg *Config) blockCodec {
	svd := cfg.svd
	if svd == nil {
		svd = factorize
	}
	return blockCodec{
		strength1: cfg.Strength1,
		strength2: cfg.Strength2,
		svd:       svd,
	}
}

// embed returns the block carrying bit. When the SVD does not converge the
// input block is returned unchanged with ok == false.
func (c blockCodec) embed(block *mat.Dense, bit bool) (*mat.Dense, bool) {
	svd, ok := c.svd(dct2(block), mat.SVDFull)
	if ok != true {
		return block, false
	}

	s := svd.Values(nil)
	if finite(s) != true {
		return block, false
	}
	u, v := new(mat.Dense), new(mat.Dense)
	svd.UTo(u)
	svd.VTo(v)

	s[0] = quantize(s[0], bit, c.strength1)
	if 0 < c.strength2 && 1 < len(s) {
		s[1] = quantize(s[1], bit, c.strength2)
	}

	us := new(mat.Dense)
	us.Mul(u, mat.NewDiagDense(len(s), s))
	usv := new(mat.Dense)
	usv.Mul(us, v.T())
	return dct3(usv), true
}

// extract reads the bit of a block. ok is false when no singular values
// could be computed, in which case the bit is reported as false.
func (c blockCodec) extract(block *mat.Dense) (bit bool, ok bool) {
	svd, ok := c.svd(dct2(block), mat.SVDNone)
	if ok != true {
		return false, false
	}
	s := svd.Values(nil)
	if finite(s) != true {
		return false, false
	}

	bit = dequantize(s[0], c.strength1)
	if 0 < c.strength2 && 1 < len(s) {
		bit = combineBits(bit, dequantize(s[1], c.strength2))
	}
	return bit, true
}

func finite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
