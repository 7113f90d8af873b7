package bwm

type Subbands struct {
	LL, HL, LH, HH *Plane
}

func haar[T Float](a, b, d, e T) (ll, hl, lh, hh T) {
	ll = (a + b + d + e) / 2
	hl = (a - b + d - e) / 2
	lh = (a + b - d - e) / 2
	hh = (a - b - d + e) / 2
	return
}

func invHaar[T Float](ll, hl, lh, hh T) (a, b, d, e T) {
	a = (ll + hl + lh + hh) / 2
	b = (ll - hl + lh - hh) / 2
	d = (ll + hl - lh - hh) / 2
	e = (ll - hl - lh + hh) / 2
	return
}

// dwt2d decomposes an even-dimensioned plane into four half-size subbands.
func dwt2d(p *Plane) Subbands {
	half := p.Rows() / 2
	width := p.Cols() / 2
	sub := Subbands{
		LL: NewPlane(half, width),
		HL: NewPlane(half, width),
		LH: NewPlane(half, width),
		HH: NewPlane(half, width),
	}
	for y := 0; y < half; y += 1 {
		top := p.Row(2 * y)
		bottom := p.Row(2*y + 1)
		ll, hl, lh, hh := sub.LL.Row(y), sub.HL.Row(y), sub.LH.Row(y), sub.HH.Row(y)
		for x := 0; x < width; x += 1 {
			ll[x], hl[x], lh[x], hh[x] = haar(top[2*x], top[2*x+1], bottom[2*x], bottom[2*x+1])
		}
	}
	return sub
}

func invDwt2d(sub Subbands) *Plane {
	half := sub.LL.Rows()
	width := sub.LL.Cols()
	p := NewPlane(half*2, width*2)
	for y := 0; y < half; y += 1 {
		top := p.Row(2 * y)
		bottom := p.Row(2*y + 1)
		ll, hl, lh, hh := sub.LL.Row(y), sub.HL.Row(y), sub.LH.Row(y), sub.HH.Row(y)
		for x := 0; x < width; x += 1 {
			top[2*x], top[2*x+1], bottom[2*x], bottom[2*x+1] = invHaar(ll[x], hl[x], lh[x], hh[x])
		}
	}
	return p
}
