package bwm

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"
)

var dctCache sync.Map // int -> *mat.Dense

// dctMatrix returns the orthonormal n-point DCT-II basis.
func dctMatrix(n int) *mat.Dense {
	if m, ok := dctCache.Load(n); ok {
		return m.(*mat.Dense)
	}
	m := mat.NewDense(n, n, nil)
	for r := 0; r < n; r += 1 {
		scale := math.Sqrt(2.0 / float64(n))
		if r == 0 {
			scale = math.Sqrt(1.0 / float64(n))
		}
		for c := 0; c < n; c += 1 {
			m.Set(r, c, scale*math.Cos(math.Pi/float64(n)*float64(r)*(float64(c)+0.5)))
		}
	}
	actual, _ := dctCache.LoadOrStore(n, m)
	return actual.(*mat.Dense)
}

func squareSize(b mat.Matrix) int {
	r, c := b.Dims()
	if r != c {
		panic(fmt.Sprintf("dct: block must be square: %dx%d", r, c))
	}
	return r
}

// dct2 applies the 2D DCT-II: D * B * D^T.
func dct2(b mat.Matrix) *mat.Dense {
	d := dctMatrix(squareSize(b))
	tmp := new(mat.Dense)
	tmp.Mul(d, b)
	out := new(mat.Dense)
	out.Mul(tmp, d.T())
	return out
}

// dct3 applies the 2D DCT-III: D^T * C * D.
func dct3(c mat.Matrix) *mat.Dense {
	d := dctMatrix(squareSize(c))
	tmp := new(mat.Dense)
	tmp.Mul(d.T(), c)
	out := new(mat.Dense)
	out.Mul(tmp, d)
	return out
}
