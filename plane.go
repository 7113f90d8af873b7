package bwm

// Plane is a row-major grid of float32 samples.
type Plane struct {
	rows, cols int
	data       []float32
}

func NewPlane(rows, cols int) *Plane {
	return &Plane{
		rows: rows,
		cols: cols,
		data: make([]float32, rows*cols),
	}
}

func PlaneFrom(rows, cols int, data []float32) *Plane {
	if len(data) != rows*cols {
		return nil
	}
	return &Plane{rows: rows, cols: cols, data: data}
}

func (p *Plane) Rows() int {
	return p.rows
}

func (p *Plane) Cols() int {
	return p.cols
}

func (p *Plane) At(r, c int) float32 {
	return p.data[r*p.cols+c]
}

func (p *Plane) Set(r, c int, v float32) {
	p.data[r*p.cols+c] = v
}

func (p *Plane) Row(r int) []float32 {
	return p.data[r*p.cols : (r+1)*p.cols : (r+1)*p.cols]
}

func (p *Plane) Data() []float32 {
	return p.data
}

func (p *Plane) Clone() *Plane {
	data := make([]float32, len(p.data))
	copy(data, p.data)
	return &Plane{rows: p.rows, cols: p.cols, data: data}
}

// grow returns a zero-extended copy of size rows x cols.
func (p *Plane) grow(rows, cols int) *Plane {
	if rows == p.rows && cols == p.cols {
		return p
	}
	out := NewPlane(rows, cols)
	for r := 0; r < p.rows; r += 1 {
		copy(out.Row(r), p.Row(r))
	}
	return out
}

// crop returns the top-left rows x cols submatrix.
func (p *Plane) crop(rows, cols int) *Plane {
	if rows == p.rows && cols == p.cols {
		return p
	}
	out := NewPlane(rows, cols)
	for r := 0; r < rows; r += 1 {
		copy(out.Row(r), p.Row(r)[:cols])
	}
	return out
}
