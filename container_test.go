package charts

import (
	"errors"
	"testing"
)

func TestParseViewBox(t *testing.T) {
	data := []struct {
		Input string
		Want  ViewBox
	}{
		{Input: "800:600", Want: NewViewBox(800, 600)},
		{Input: "0 0 640 480", Want: NewViewBox(640, 480)},
		{Input: "10,20,100,50", Want: ViewBox{MinX: 10, MinY: 20, Width: 100, Height: 50}},
		{Input: "-5:-5:10:10", Want: ViewBox{MinX: -5, MinY: -5, Width: 10, Height: 10}},
	}
	for _, d := range data {
		got, err := ParseViewBox(d.Input)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", d.Input, err)
			continue
		}
		if got != d.Want {
			t.Errorf("%s: want %v, got %v", d.Input, d.Want, got)
		}
	}
}

func TestParseViewBoxInvalid(t *testing.T) {
	for _, str := range []string{"", "800", "1:2:3", "a:b", "10:-10"} {
		if _, err := ParseViewBox(str); !errors.Is(err, ErrViewBox) {
			t.Errorf("%s: want ErrViewBox, got %v", str, err)
		}
	}
}

func TestViewBoxString(t *testing.T) {
	box := ViewBox{MinX: 0, MinY: 1.5, Width: 800, Height: 600}
	if got := box.String(); got != "0 1.5 800 600" {
		t.Errorf("want %q, got %q", "0 1.5 800 600", got)
	}
}

func TestDocument(t *testing.T) {
	doc := NewDocument()
	c, err := doc.Create("chart", NewViewBox(10, 10))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := doc.Create("chart", NewViewBox(20, 20)); !errors.Is(err, ErrDuplicate) {
		t.Errorf("want ErrDuplicate, got %v", err)
	}
	got, err := doc.Lookup("chart")
	if err != nil {
		t.Fatal(err)
	}
	if got != c {
		t.Errorf("lookup returned another container")
	}
	if _, err := doc.Lookup("other"); !errors.Is(err, ErrNotFound) {
		t.Errorf("want ErrNotFound, got %v", err)
	}
}

func TestContainerChildren(t *testing.T) {
	var c Container
	c.Append(Node{Name: NodeRect})
	c.Append(Node{Name: NodeText, Text: "label"})

	all := c.Children()
	if len(all) != 2 || c.Len() != 2 {
		t.Fatalf("want 2 children, got %d", len(all))
	}
	all[0].Name = "circle"
	if c.Children()[0].Name != NodeRect {
		t.Errorf("children should be a copy")
	}
}
