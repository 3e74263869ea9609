package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	charts "github.com/midbel/webcharts"
)

func TestParseItems(t *testing.T) {
	const input = `label,value,color
Hydroelectric,17.7
Biomass, 39.3,#FF0000
"Wind, offshore",36.9
`
	data, err := parseItems(strings.NewReader(input), "energy.csv", barItem)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 3 {
		t.Fatalf("items: want 3, got %d", len(data))
	}
	if data[1].Label != "Biomass" || data[1].Value != 39.3 || data[1].Color != "#FF0000" {
		t.Errorf("unexpected item: %+v", data[1])
	}
	if data[2].Label != "Wind, offshore" || data[2].Percent != 0 {
		t.Errorf("unexpected item: %+v", data[2])
	}

	data, err = parseItems(strings.NewReader(input), "energy.csv", pieItem)
	if err != nil {
		t.Fatal(err)
	}
	if data[0].Percent != 17.7 || data[0].Value != 0 {
		t.Errorf("pie item should only carry a percent: %+v", data[0])
	}
}

func TestParseItemsErrors(t *testing.T) {
	data := []struct {
		Input string
		Line  int
		Err   error
	}{
		{Input: "label,value\nfoo\n", Line: 2, Err: ErrColumns},
		{Input: "label,value\nfoo,1\nbar,1,red,extra\n", Line: 3, Err: ErrColumns},
		{Input: "label,value\nfoo,abc\n", Line: 2, Err: strconv.ErrSyntax},
	}
	for _, d := range data {
		_, err := parseItems(strings.NewReader(d.Input), "bad.csv", barItem)
		var cerr CSVError
		if !errors.As(err, &cerr) {
			t.Errorf("%q: expected CSVError, got %v", d.Input, err)
			continue
		}
		if cerr.Line != d.Line || cerr.File != "bad.csv" {
			t.Errorf("%q: want bad.csv:%d, got %s:%d", d.Input, d.Line, cerr.File, cerr.Line)
		}
		if !errors.Is(err, d.Err) {
			t.Errorf("%q: want %v, got %v", d.Input, d.Err, err)
		}
	}
}

func TestParseItemsEmpty(t *testing.T) {
	data, err := parseItems(strings.NewReader(""), "empty.csv", pieItem)
	if err != nil {
		t.Fatal(err)
	}
	if data == nil || len(data) != 0 {
		t.Errorf("empty input should give an empty, non nil, dataset: %v", data)
	}
}

func TestGetIdent(t *testing.T) {
	data := map[string]string{
		"energy.csv":          "energy",
		"dir/energy.2017.csv": "energy",
		"plain":               "plain",
	}
	for in, want := range data {
		if got := getIdent(in); got != want {
			t.Errorf("%s: want %s, got %s", in, want, got)
		}
	}
}

func TestChecks(t *testing.T) {
	if msg := checkBars([]charts.Item{{Label: "a"}}); msg == "" {
		t.Errorf("bars without value should be reported")
	}
	if msg := checkBars([]charts.Item{{Label: "a", Value: 1}}); msg != "" {
		t.Errorf("unexpected warning: %s", msg)
	}
	if msg := checkWedges([]charts.Item{{Percent: 0.5}}); msg == "" {
		t.Errorf("incomplete pie should be reported")
	}
	if msg := checkWedges(charts.SampleData()); msg != "" {
		t.Errorf("unexpected warning: %s", msg)
	}
}

func TestCommandSample(t *testing.T) {
	var (
		dir    = t.TempDir()
		output = filepath.Join(dir, "bar.svg")
		errw   bytes.Buffer
		cmd    = newRootCommand()
	)
	cmd.SetErr(&errw)
	cmd.SetArgs([]string{"bar", "--seed", "42", "-o", output})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %s", err)
	}
	if !strings.Contains(errw.String(), "no positive value") {
		t.Errorf("expected a warning about degenerate bars, got %q", errw.String())
	}
}

func TestCommandFiles(t *testing.T) {
	var (
		dir = t.TempDir()
		out = filepath.Join(dir, "out")
	)
	files := []string{
		filepath.Join(dir, "first.csv"),
		filepath.Join(dir, "second.csv"),
	}
	for _, f := range files {
		if err := os.WriteFile(f, []byte("label,percent\na,0.25\nb,0.75\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	cmd := newRootCommand()
	cmd.SetArgs(append([]string{"pie", "--palette", "tableau10", "--dir", out}, files...))
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"first.svg", "second.svg"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("%s: not written: %s", name, err)
		}
	}
}

func TestCommandErrors(t *testing.T) {
	data := [][]string{
		{"pie", "a.csv", "b.csv"},
		{"bar", "--viewbox", "800", "-o", os.DevNull},
		{"pie", "does-not-exist.csv", "-o", os.DevNull},
	}
	for _, args := range data {
		cmd := newRootCommand()
		cmd.SetErr(new(bytes.Buffer))
		cmd.SetArgs(args)
		if err := cmd.Execute(); err == nil {
			t.Errorf("%v: expected error", args)
		}
	}
}
