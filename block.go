package bwm

import (
	"gonum.org/v1/gonum/mat"
)

// BlockSize is the edge length of the square LL tiles that carry one bit each.
const BlockSize = 4

func blockGrid(ll *Plane) (rows, cols int) {
	return ll.Rows() / BlockSize, ll.Cols() / BlockSize
}

func cursor(i, cols int) (y, x int) {
	return (i / cols) * BlockSize, (i % cols) * BlockSize
}

// cutBlocks copies every full tile of ll into its own matrix, in row-major order.
func cutBlocks(ll *Plane) []*mat.Dense {
	rows, cols := blockGrid(ll)
	blocks := make([]*mat.Dense, rows*cols)
	for i := range blocks {
		y, x := cursor(i, cols)
		data := make([]float64, BlockSize*BlockSize)
		for r := 0; r < BlockSize; r += 1 {
			row := ll.Row(y + r)[x : x+BlockSize]
			for c, v := range row {
				data[r*BlockSize+c] = float64(v)
			}
		}
		blocks[i] = mat.NewDense(BlockSize, BlockSize, data)
	}
	return blocks
}

// assembleBlocks writes blocks back into their tiles; the remainder of ll is left as is.
func assembleBlocks(ll *Plane, blocks []*mat.Dense) {
	_, cols := blockGrid(ll)
	for i, b := range blocks {
		y, x := cursor(i, cols)
		for r := 0; r < BlockSize; r += 1 {
			row := ll.Row(y + r)[x : x+BlockSize]
			for c := range row {
				row[c] = float32(b.At(r, c))
			}
		}
	}
}
