package bwm

// BT.709
const (
	lumaR float32 = 0.2126
	lumaG float32 = 0.7152
	lumaB float32 = 0.0722

	chromaB float32 = 1.8556
	chromaR float32 = 1.5748
)

func rgbToYCbCr(r, g, b float32) (y, cb, cr float32) {
	y = lumaR*r + lumaG*g + lumaB*b
	cb = (b - y) / chromaB
	cr = (r - y) / chromaR
	return
}

func yCbCrToRGB(y, cb, cr float32) (r, g, b float32) {
	r = y + chromaR*cr
	b = y + chromaB*cb
	g = (y - lumaR*r - lumaB*b) / lumaG
	return
}

// YCbCrA is an image in luma/chroma space with alpha carried alongside.
type YCbCrA struct {
	stage
	Y, Cb, Cr, A  *Plane
	Height, Width int
}

func ToYCbCrA(src *RGBA) (*YCbCrA, error) {
	if err := src.validate(); err != nil {
		return nil, err
	}
	h, w := src.Height, src.Width
	y := NewPlane(h, w)
	cb := NewPlane(h, w)
	cr := NewPlane(h, w)
	for i := range src.R.data {
		y.data[i], cb.data[i], cr.data[i] = rgbToYCbCr(src.R.data[i], src.G.data[i], src.B.data[i])
	}
	return &YCbCrA{
		Y:      y,
		Cb:     cb,
		Cr:     cr,
		A:      src.A.Clone(),
		Height: h,
		Width:  w,
	}, nil
}

// ToRGBA converts back to RGBA planes and consumes m.
func (m *YCbCrA) ToRGBA() (*RGBA, error) {
	if err := m.take(); err != nil {
		return nil, err
	}
	h, w := m.Height, m.Width
	out := &RGBA{
		Height: h,
		Width:  w,
		R:      NewPlane(h, w),
		G:      NewPlane(h, w),
		B:      NewPlane(h, w),
		A:      m.A,
	}
	for i := range m.Y.data {
		out.R.data[i], out.G.data[i], out.B.data[i] = yCbCrToRGB(m.Y.data[i], m.Cb.data[i], m.Cr.data[i])
	}
	m.Y, m.Cb, m.Cr, m.A = nil, nil, nil, nil
	return out, nil
}
