package charts

const (
	FontSize      = 12.0
	currentColour = "currentColour"
)

// Style holds the fixed presentation attributes shared by the renderers.
type Style struct {
	Line struct {
		Color string
		Width float64
	}
	Text struct {
		Size  float64
		Color string
	}
}

func DefaultStyle() Style {
	var s Style
	s.Line.Color = "black"
	s.Line.Width = 1
	s.Text.Size = FontSize
	s.Text.Color = "black"
	return s
}
