package charts

import (
	"html"
	"math"
	"sync"

	"github.com/midbel/svg"
)

const (
	barMargin     = 0.05
	barTextOffset = 0.01

	pieArcRatio   = 0.8
	pieLabelRatio = 0.9
)

type Renderer interface {
	Render(ViewBox, []Item) []Node
}

type Bar struct {
	Index  int
	Label  string
	Value  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
	Fill   string

	Text    string
	TextPos Point
}

// Degenerate reports whether the width of the bar could not be computed,
// which happens when no item of the chart has a positive value.
func (b Bar) Degenerate() bool {
	return math.IsNaN(b.Width) || math.IsInf(b.Width, 0)
}

// LayoutBars stacks one horizontal bar per item from top to bottom. Every bar
// gets the same height. Widths are relative to the largest value.
func LayoutBars(box ViewBox, data []Item, colors ColorFunc) []Bar {
	if len(data) == 0 {
		return nil
	}
	if colors == nil {
		colors = RandomPastel(nil)
	}
	var (
		pad = Padding{
			Top:    box.Height * barMargin,
			Bottom: box.Height * barMargin,
			Left:   box.Width * barMargin,
			Right:  box.Width * barMargin,
		}
		width  = box.Width - pad.Horizontal()
		height = box.Height - pad.Vertical()
		xscale = NumberScaler(NumberDomain(0, MaxValue(data)), NewRange(0, width))
		yscale = BandScaler(len(data), NewRange(pad.Top, pad.Top+height))
		bars   = make([]Bar, 0, len(data))
	)
	for i, it := range data {
		b := Bar{
			Index:  i,
			Label:  it.Label,
			Value:  it.Value,
			X:      pad.Left,
			Y:      yscale.Scale(float64(i)),
			Width:  xscale.Scale(it.Value),
			Height: height / float64(len(data)),
			Fill:   colors(i, it),
			Text:   it.Label + " (" + formatNumber(it.Value) + ")",
		}
		b.TextPos = NewPoint(b.X+width*barTextOffset, b.Y+b.Height/2)
		bars = append(bars, b)
	}
	return bars
}

type BarRenderer struct {
	Colors ColorFunc
	Style  Style
}

func (r BarRenderer) Render(box ViewBox, data []Item) []Node {
	style := r.style()
	var nodes []Node
	for _, b := range LayoutBars(box, data, r.Colors) {
		el := svg.NewRect(
			svg.WithPosition(b.X, b.Y),
			svg.WithDimension(b.Width, b.Height),
			svg.WithStroke(svg.NewStroke(style.Line.Color, style.Line.Width)),
			svg.WithFill(svg.NewFill(b.Fill)),
		)
		nodes = append(nodes, Node{Name: NodeRect, Element: el.AsElement()})

		txt := getLabelText(b.Text, b.TextPos, style)
		txt.Baseline = "middle"
		nodes = append(nodes, Node{Name: NodeText, Text: b.Text, Element: txt.AsElement()})
	}
	return nodes
}

func (r BarRenderer) style() Style {
	if r.Style.Line.Color == "" {
		return DefaultStyle()
	}
	return r.Style
}

// Wedge is one slice of a pie. Start and End are in degrees, counterclockwise
// from the right of the center.
type Wedge struct {
	Index   int
	Label   string
	Percent float64
	Start   float64
	End     float64
	Center  Point
	Radius  float64
	From    Point
	To      Point
	Fill    string

	LabelPos    Point
	PercentText string
	PercentPos  Point
}

func (w Wedge) Sweep() float64 {
	return w.End - w.Start
}

// Accurate is false when the arc of the wedge spans half a circle or more. The
// arc is always drawn with the small arc flag so such wedges are wrong.
func (w Wedge) Accurate() bool {
	return w.Sweep() < halfcircle
}

func (w Wedge) mid() float64 {
	return Radians(w.Start+w.End) / 2
}

// LayoutWedges lays out one wedge per item, turning counterclockwise from 0
// degrees. Percent labels sit below the name labels, shifted by the height of
// the name as given by measure.
func LayoutWedges(box ViewBox, data []Item, colors ColorFunc, measure Measurer) []Wedge {
	if len(data) == 0 {
		return nil
	}
	if colors == nil {
		colors = RandomPastel(nil)
	}
	if measure == nil {
		measure = defaultMeasurer()
	}
	var (
		center = NewPoint(box.Width/2, box.Height/2)
		radius = math.Min(center.X, center.Y)
		angle  float64
		all    = make([]Wedge, 0, len(data))
	)
	for i, it := range data {
		w := Wedge{
			Index:   i,
			Label:   it.Label,
			Percent: it.Percent,
			Start:   angle,
			End:     angle + fullcircle*it.Percent,
			Center:  center,
			Radius:  radius * pieArcRatio,
			Fill:    colors(i, it),
		}
		w.From = center.Add(PolarToCartesian(w.Radius, Radians(w.Start)))
		w.To = center.Add(PolarToCartesian(w.Radius, Radians(w.End)))

		pos := PolarToCartesian(radius*pieLabelRatio, w.mid())
		w.LabelPos = center.Add(pos)
		w.PercentText = FormatPercent(it.Percent)
		w.PercentPos = w.LabelPos
		w.PercentPos.Y += measure.Height(w.Label)

		all = append(all, w)
		angle = w.End
	}
	return all
}

type PieRenderer struct {
	Colors   ColorFunc
	Measurer Measurer
	Style    Style
}

func (r PieRenderer) Render(box ViewBox, data []Item) []Node {
	var (
		style = r.style()
		nodes []Node
	)
	for _, w := range LayoutWedges(box, data, r.Colors, r.Measurer) {
		pat := svg.NewPath(
			svg.WithStroke(svg.NewStroke(style.Line.Color, style.Line.Width)),
			svg.WithFill(svg.NewFill(w.Fill)),
		)
		pat.AbsMoveTo(svg.NewPos(w.Center.X, w.Center.Y))
		pat.AbsLineTo(svg.NewPos(w.From.X, w.From.Y))
		pat.AbsArcTo(svg.NewPos(w.To.X, w.To.Y), w.Radius, w.Radius, 0, false, false)
		pat.AbsLineTo(svg.NewPos(w.Center.X, w.Center.Y))
		nodes = append(nodes, Node{Name: NodePath, Element: pat.AsElement()})

		name := getLabelText(w.Label, w.LabelPos, style)
		name.Anchor = "middle"
		nodes = append(nodes, Node{Name: NodeText, Text: w.Label, Element: name.AsElement()})

		perc := getLabelText(w.PercentText, w.PercentPos, style)
		perc.Anchor = "middle"
		nodes = append(nodes, Node{Name: NodeText, Text: w.PercentText, Element: perc.AsElement()})
	}
	return nodes
}

func (r PieRenderer) style() Style {
	if r.Style.Line.Color == "" {
		return DefaultStyle()
	}
	return r.Style
}

// getLabelText escapes str since the text of the node is written as is.
func getLabelText(str string, pos Point, style Style) svg.Text {
	options := []svg.Option{
		svg.WithPosition(pos.X, pos.Y),
		svg.WithFont(svg.NewFont(style.Text.Size)),
		svg.WithStroke(svg.NewStroke(style.Text.Color, style.Line.Width)),
		svg.WithFill(svg.NewFill(style.Text.Color)),
	}
	return svg.NewText(html.EscapeString(str), options...)
}

var (
	measureOnce sync.Once
	measurer    Measurer
)

func defaultMeasurer() Measurer {
	measureOnce.Do(func() {
		measurer = DefaultMeasurer()
	})
	return measurer
}
