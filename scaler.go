package charts

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

type Scaler interface {
	Scale(float64) float64
	Space() float64
}

type numberScaler struct {
	Range
	Domain
}

// NumberScaler maps the domain linearly onto the length of the range. The
// result is relative to the start of the range. An empty domain yields NaN or
// infinite values.
func NumberScaler(dom Domain, rg Range) Scaler {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return (n.Diff(v) / n.Extend()) * n.Len()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type bandScaler struct {
	Range
	count int
}

// BandScaler splits the range into count bands of the same size. Scale takes
// the index of a band and returns its absolute start.
func BandScaler(count int, rg Range) Scaler {
	return bandScaler{
		Range: rg,
		count: count,
	}
}

func (b bandScaler) Scale(v float64) float64 {
	return b.Min() + v*b.Space()
}

func (b bandScaler) Space() float64 {
	return b.Len() / float64(b.count)
}
