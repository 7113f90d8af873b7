package bwm

import (
	"sync/atomic"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// stage makes a pipeline step non-reentrant: each representation is
// consumed exactly once by the transition to the next one.
type stage struct {
	consumed bool
}

func (s *stage) take() error {
	if s.consumed {
		return errors.WithStack(ErrConsumed)
	}
	s.consumed = true
	return nil
}

func (s *stage) check() error {
	if s.consumed {
		return errors.WithStack(ErrConsumed)
	}
	return nil
}

// Decomposed holds the Haar subbands of Y, Cb and Cr.
type Decomposed struct {
	stage
	sub            [numChannels]Subbands
	a              *Plane
	originalHeight int
	originalWidth  int
}

func (p *Padded) Decompose() (*Decomposed, error) {
	if err := p.take(); err != nil {
		return nil, err
	}
	planes := [numChannels]*Plane{p.Y, p.Cb, p.Cr}
	out := &Decomposed{
		a:              p.A,
		originalHeight: p.OriginalHeight,
		originalWidth:  p.OriginalWidth,
	}
	eachChannel(func(ch int) {
		out.sub[ch] = dwt2d(planes[ch])
	})
	p.Y, p.Cb, p.Cr, p.A = nil, nil, nil, nil
	return out, nil
}

func (d *Decomposed) Layout() Layout {
	ll := d.sub[0].LL
	if ll == nil {
		return Layout{}
	}
	rows, cols := blockGrid(ll)
	return Layout{
		Height:        d.originalHeight,
		Width:         d.originalWidth,
		PaddedHeight:  ll.Rows() * 2,
		PaddedWidth:   ll.Cols() * 2,
		BlockRows:     rows,
		BlockCols:     cols,
		RemainderRows: ll.Rows() % BlockSize,
		RemainderCols: ll.Cols() % BlockSize,
	}
}

// Cut partitions each LL subband into blocks. With RemainderReject the
// stage is left unconsumed when the LL size is not a multiple of BlockSize.
func (d *Decomposed) Cut(policy RemainderPolicy) (*Blocked, error) {
	if err := d.check(); err != nil {
		return nil, err
	}
	layout := d.Layout()
	if policy == RemainderReject && (0 < layout.RemainderRows || 0 < layout.RemainderCols) {
		return nil, errors.Wrapf(ErrRemainder, "LL %dx%d, remainder %dx%d",
			layout.PaddedHeight/2, layout.PaddedWidth/2, layout.RemainderRows, layout.RemainderCols)
	}
	if err := d.take(); err != nil {
		return nil, err
	}

	out := &Blocked{
		sub:    d.sub,
		a:      d.a,
		Layout: layout,
	}
	eachChannel(func(ch int) {
		out.blocks[ch] = cutBlocks(d.sub[ch].LL)
	})
	d.a = nil
	d.sub = [numChannels]Subbands{}
	return out, nil
}

// Blocked holds the LL blocks of every color channel and the subbands
// needed to rebuild the image.
type Blocked struct {
	stage
	blocks [numChannels][]*mat.Dense
	sub    [numChannels]Subbands
	a      *Plane
	Layout Layout
}

// Embed writes bits into the blocks. All validation happens before any
// block is modified; the returned count is the number of block-channels
// left unchanged because their SVD did not converge.
func (b *Blocked) Embed(bits []bool, cfg *Config) (*Embedded, int, error) {
	if err := b.check(); err != nil {
		return nil, 0, err
	}
	wmLen := len(bits)
	nblocks := b.Layout.Blocks()
	if wmLen == 0 {
		return nil, 0, errors.WithStack(ErrEmptyWatermark)
	}
	if nblocks < wmLen {
		return nil, 0, errors.Wrapf(ErrCapacity, "%d bits > %d blocks", wmLen, nblocks)
	}
	if err := b.take(); err != nil {
		return nil, 0, err
	}

	strategy := cfg.Mode.Strategy(nblocks)
	codec := newBlockCodec(cfg)

	var embedded [numChannels][]*mat.Dense
	for ch := range embedded {
		embedded[ch] = make([]*mat.Dense, nblocks)
	}
	degraded := new(atomic.Int64)
	parallelFor(nblocks, cfg.workers(), func(start, end int) {
		for i := start; i < end; i += 1 {
			bit := bits[strategy.BitPosition(i, wmLen)]
			for ch := 0; ch < numChannels; ch += 1 {
				block, ok := codec.embed(b.blocks[ch][i], bit)
				if ok != true {
					degraded.Add(1)
				}
				embedded[ch][i] = block
			}
		}
	})

	n := int(degraded.Load())
	logger := cfg.logger()
	logger.Debug("embedded watermark",
		"bits", wmLen,
		"blocks", nblocks,
		"mode", cfg.Mode.String(),
	)
	if 0 < n {
		logger.Warn("svd did not converge, blocks left unchanged", "degraded", n)
	}

	out := &Embedded{
		blocks: embedded,
		sub:    b.sub,
		a:      b.a,
		layout: b.Layout,
	}
	b.blocks = [numChannels][]*mat.Dense{}
	b.sub = [numChannels]Subbands{}
	b.a = nil
	return out, n, nil
}

// Extract reads wmLen bits by majority vote. The returned count is the
// number of block-channels whose singular values were unavailable.
func (b *Blocked) Extract(wmLen int, cfg *Config) ([]bool, int, error) {
	if err := b.check(); err != nil {
		return nil, 0, err
	}
	nblocks := b.Layout.Blocks()
	if wmLen < 1 {
		return nil, 0, errors.Wrapf(ErrEmptyWatermark, "length=%d", wmLen)
	}
	if nblocks < 1 {
		return nil, 0, errors.WithStack(ErrNoBlocks)
	}
	if err := b.take(); err != nil {
		return nil, 0, err
	}

	strategy := cfg.Mode.Strategy(nblocks)
	codec := newBlockCodec(cfg)

	raw := make([]rawBits, nblocks)
	degraded := new(atomic.Int64)
	parallelFor(nblocks, cfg.workers(), func(start, end int) {
		for i := start; i < end; i += 1 {
			for ch := 0; ch < numChannels; ch += 1 {
				bit, ok := codec.extract(b.blocks[ch][i])
				if ok != true {
					degraded.Add(1)
				}
				raw[i][ch] = bit
			}
		}
	})

	n := int(degraded.Load())
	if 0 < n {
		cfg.logger().Warn("singular values unavailable, blocks read as false", "degraded", n)
	}

	bits := vote(raw, groupBlocks(strategy, wmLen, nblocks))
	b.blocks = [numChannels][]*mat.Dense{}
	b.sub = [numChannels]Subbands{}
	b.a = nil
	return bits, n, nil
}

// Embedded holds watermarked blocks waiting to be written back.
type Embedded struct {
	stage
	blocks [numChannels][]*mat.Dense
	sub    [numChannels]Subbands
	a      *Plane
	layout Layout
}

func (e *Embedded) Assemble() (*Assembled, error) {
	if err := e.take(); err != nil {
		return nil, err
	}
	eachChannel(func(ch int) {
		assembleBlocks(e.sub[ch].LL, e.blocks[ch])
	})
	out := &Assembled{
		sub:            e.sub,
		a:              e.a,
		originalHeight: e.layout.Height,
		originalWidth:  e.layout.Width,
	}
	e.blocks = [numChannels][]*mat.Dense{}
	e.sub = [numChannels]Subbands{}
	e.a = nil
	return out, nil
}

// Assembled holds the subbands with the watermarked LL written back.
type Assembled struct {
	stage
	sub            [numChannels]Subbands
	a              *Plane
	originalHeight int
	originalWidth  int
}

// Reconstruct applies the inverse wavelet transform.
func (a *Assembled) Reconstruct() (*Padded, error) {
	if err := a.take(); err != nil {
		return nil, err
	}
	var planes [numChannels]*Plane
	eachChannel(func(ch int) {
		planes[ch] = invDwt2d(a.sub[ch])
	})
	out := &Padded{
		Y:              planes[0],
		Cb:             planes[1],
		Cr:             planes[2],
		A:              a.a,
		OriginalHeight: a.originalHeight,
		OriginalWidth:  a.originalWidth,
	}
	a.sub = [numChannels]Subbands{}
	a.a = nil
	return out, nil
}
