package charts

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

var (
	ErrNotFound  = errors.New("container not found")
	ErrDuplicate = errors.New("container already exists")
	ErrViewBox   = errors.New("invalid view box")
)

type ViewBox struct {
	MinX   float64
	MinY   float64
	Width  float64
	Height float64
}

func NewViewBox(width, height float64) ViewBox {
	return ViewBox{
		Width:  width,
		Height: height,
	}
}

// ParseViewBox accepts either "width:height" or "minx:miny:width:height".
// Spaces and commas are accepted as separators too.
func ParseViewBox(str string) (ViewBox, error) {
	var (
		box ViewBox
		vs  = strings.FieldsFunc(str, func(r rune) bool {
			return r == ':' || r == ',' || r == ' '
		})
	)
	if len(vs) != 2 && len(vs) != 4 {
		return box, fmt.Errorf("%s: %w", str, ErrViewBox)
	}
	all := make([]float64, 0, len(vs))
	for _, v := range vs {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return box, fmt.Errorf("%s: %w", str, ErrViewBox)
		}
		all = append(all, f)
	}
	if len(all) == 4 {
		box.MinX, box.MinY = all[0], all[1]
		all = all[2:]
	}
	box.Width, box.Height = slices.Fst(all), slices.Lst(all)
	if box.Width < 0 || box.Height < 0 {
		return box, fmt.Errorf("%s: %w", str, ErrViewBox)
	}
	return box, nil
}

func (b ViewBox) String() string {
	return fmt.Sprintf("%s %s %s %s", formatNumber(b.MinX), formatNumber(b.MinY), formatNumber(b.Width), formatNumber(b.Height))
}

// Node is a child appended to a container by a renderer. Name is the SVG tag
// of Element and Text its content for text nodes.
type Node struct {
	Name    string
	Text    string
	Element svg.Element
}

const (
	NodeRect = "rect"
	NodePath = "path"
	NodeText = "text"
)

// Container is an SVG element that charts draw into. It only ever grows.
type Container struct {
	ID      string
	ViewBox ViewBox

	children []Node
}

func (c *Container) Append(n Node) {
	c.children = append(c.children, n)
}

func (c *Container) Children() []Node {
	all := make([]Node, len(c.children))
	copy(all, c.children)
	return all
}

func (c *Container) Len() int {
	return len(c.children)
}

func (c *Container) Render(w io.Writer) error {
	return renderSVG(w, c.ViewBox.Width, c.ViewBox.Height, c.group(0))
}

func (c *Container) group(top float64) svg.Element {
	grp := svg.NewGroup(svg.WithID(c.ID), svg.WithTranslate(-c.ViewBox.MinX, top-c.ViewBox.MinY))
	for _, n := range c.children {
		if n.Element == nil {
			continue
		}
		grp.Append(n.Element)
	}
	return grp.AsElement()
}

func renderSVG(w io.Writer, width, height float64, elems ...svg.Element) error {
	el := svg.NewSVG(svg.WithDimension(width, height))
	el.OmitProlog = true
	for _, e := range elems {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// Document is a set of containers addressed by their id.
type Document struct {
	containers map[string]*Container
	order      []string
}

func NewDocument() *Document {
	return &Document{
		containers: make(map[string]*Container),
	}
}

func (d *Document) Create(id string, box ViewBox) (*Container, error) {
	if _, ok := d.containers[id]; ok {
		return nil, fmt.Errorf("%s: %w", id, ErrDuplicate)
	}
	c := Container{
		ID:      id,
		ViewBox: box,
	}
	d.containers[id] = &c
	d.order = append(d.order, id)
	return &c, nil
}

func (d *Document) Lookup(id string) (*Container, error) {
	c, ok := d.containers[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return c, nil
}

// Render writes the document as a single svg element. Containers are stacked
// from top to bottom in creation order.
func (d *Document) Render(w io.Writer) error {
	if len(d.order) == 1 {
		return d.containers[slices.Fst(d.order)].Render(w)
	}
	var (
		width  float64
		height float64
		elems  []svg.Element
	)
	for _, id := range d.order {
		c := d.containers[id]
		elems = append(elems, c.group(height))
		height += c.ViewBox.Height
		if c.ViewBox.Width > width {
			width = c.ViewBox.Width
		}
	}
	return renderSVG(w, width, height, elems...)
}
