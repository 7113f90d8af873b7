package bwm

const numChannels = 3

// rawBits are the bits read from one block in Y, Cb and Cr.
type rawBits [numChannels]bool

func (r rawBits) count() int {
	n := 0
	for _, b := range r {
		if b {
			n += 1
		}
	}
	return n
}

// groupBlocks inverts the strategy: groups[p] lists the blocks carrying bit p.
// It is BlockIndices for every p in a single pass over the blocks.
func groupBlocks(strategy Strategy, wmLen, nblocks int) [][]int {
	if wmLen < 1 {
		return nil
	}
	groups := make([][]int, wmLen)
	for i := 0; i < nblocks; i += 1 {
		p := strategy.BitPosition(i, wmLen)
		groups[p] = append(groups[p], i)
	}
	return groups
}

// vote decides each bit by majority over its blocks and channels.
// Ties, including bits without any block, decode to true.
func vote(raw []rawBits, groups [][]int) []bool {
	bits := make([]bool, len(groups))
	for p, blocks := range groups {
		sum := 0
		for _, i := range blocks {
			sum += raw[i].count()
		}
		bits[p] = numChannels*len(blocks) <= 2*sum
	}
	return bits
}
