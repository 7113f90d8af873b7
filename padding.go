package bwm

// Padded holds even-dimensioned planes and the size to crop back to.
type Padded struct {
	stage
	Y, Cb, Cr, A   *Plane
	OriginalHeight int
	OriginalWidth  int
}

func (p *Padded) Height() int {
	return p.Y.Rows()
}

func (p *Padded) Width() int {
	return p.Y.Cols()
}

// Pad appends one zero row and/or column when the height and/or width are odd.
func (m *YCbCrA) Pad() (*Padded, error) {
	if err := m.take(); err != nil {
		return nil, err
	}
	h, w := m.Height, m.Width
	ph, pw := h+(h&1), w+(w&1)

	out := &Padded{
		Y:              m.Y.grow(ph, pw),
		Cb:             m.Cb.grow(ph, pw),
		Cr:             m.Cr.grow(ph, pw),
		A:              m.A.grow(ph, pw),
		OriginalHeight: h,
		OriginalWidth:  w,
	}
	m.Y, m.Cb, m.Cr, m.A = nil, nil, nil, nil
	return out, nil
}

// Unpad crops every plane back to the original size.
func (p *Padded) Unpad() (*YCbCrA, error) {
	if err := p.take(); err != nil {
		return nil, err
	}
	h, w := p.OriginalHeight, p.OriginalWidth
	out := &YCbCrA{
		Y:      p.Y.crop(h, w),
		Cb:     p.Cb.crop(h, w),
		Cr:     p.Cr.crop(h, w),
		A:      p.A.crop(h, w),
		Height: h,
		Width:  w,
	}
	p.Y, p.Cb, p.Cr, p.A = nil, nil, nil, nil
	return out, nil
}
