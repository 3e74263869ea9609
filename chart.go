package charts

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Options configures the rendering of a chart. ID names the container of the
// document to draw into. When Data is nil, SampleData is drawn.
type Options struct {
	ID       string
	Data     []Item
	Colors   ColorFunc
	Measurer Measurer
}

// Chart is the result of drawing into a container. It keeps the nodes it
// appended, in order. A chart is never updated once rendered.
type Chart struct {
	Container *Container
	Nodes     []Node
}

func (c *Chart) Count(name string) int {
	var n int
	for _, nd := range c.Nodes {
		if nd.Name == name {
			n++
		}
	}
	return n
}

func (c *Chart) Texts() []string {
	var all []string
	for _, nd := range c.Nodes {
		if nd.Name == NodeText {
			all = append(all, nd.Text)
		}
	}
	return all
}

func RenderBar(doc *Document, opts Options) (*Chart, error) {
	rdr := BarRenderer{
		Colors: opts.Colors,
	}
	return renderChart(doc, opts, rdr)
}

func RenderPie(doc *Document, opts Options) (*Chart, error) {
	rdr := PieRenderer{
		Colors:   opts.Colors,
		Measurer: opts.Measurer,
	}
	return renderChart(doc, opts, rdr)
}

func renderChart(doc *Document, opts Options, rdr Renderer) (*Chart, error) {
	ct, err := doc.Lookup(opts.ID)
	if err != nil {
		return nil, err
	}
	data := opts.Data
	if data == nil {
		data = SampleData()
	}
	ch := Chart{
		Container: ct,
	}
	for _, n := range rdr.Render(ct.ViewBox, data) {
		ct.Append(n)
		ch.Nodes = append(ch.Nodes, n)
	}
	return &ch, nil
}
