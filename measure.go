package charts

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Measurer gives the height of the box of a text once drawn.
type Measurer interface {
	Height(string) float64
}

// FaceMeasurer reports the line box of its face: ascent plus descent. The
// height does not depend on the glyphs of the text.
type FaceMeasurer struct {
	Face font.Face
}

func (m FaceMeasurer) Height(str string) float64 {
	if str == "" {
		return 0
	}
	metrics := m.Face.Metrics()
	if h := metrics.Ascent + metrics.Descent; h > 0 {
		return fixedToFloat(h)
	}
	return fixedToFloat(metrics.Height)
}

// DefaultMeasurer measures text set in Go Regular at FontSize pixels.
func DefaultMeasurer() Measurer {
	face, err := loadFace(goregular.TTF, FontSize)
	if err != nil {
		return FaceMeasurer{Face: basicfont.Face7x13}
	}
	return FaceMeasurer{Face: face}
}

func loadFace(ttf []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	opts := truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	}
	return truetype.NewFace(f, &opts), nil
}

type fixedMeasurer float64

// FixedMeasurer reports the same height for every non empty text.
func FixedMeasurer(height float64) Measurer {
	return fixedMeasurer(height)
}

func (m fixedMeasurer) Height(str string) float64 {
	if str == "" {
		return 0
	}
	return float64(m)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
