package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/midbel/slices"
	charts "github.com/midbel/webcharts"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	defaultID      = "chart"
	defaultViewBox = "800:600"
)

type renderFunc func(*charts.Document, charts.Options) (*charts.Chart, error)

type settings struct {
	ID      string
	ViewBox string
	Output  string
	Dir     string
	Seed    int64
	Palette string
	Color   bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var set settings
	root := &cobra.Command{
		Use:   "svgchart",
		Short: "Draw bar and pie charts as SVG",
		Long: `svgchart draws bar and pie charts from CSV files (label,number[,color])
and writes them as SVG. Without input files, a sample dataset is drawn.`,
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&set.ID, "id", defaultID, "id of the SVG container")
	flags.StringVar(&set.ViewBox, "viewbox", defaultViewBox, "view box of the container (w:h or x:y:w:h)")
	flags.StringVarP(&set.Output, "output", "o", "", "output file (default: stdout)")
	flags.StringVar(&set.Dir, "dir", "", "directory for one SVG per input file")
	flags.Int64Var(&set.Seed, "seed", 0, "seed of the random colors")
	flags.StringVar(&set.Palette, "palette", "", "fixed palette instead of random colors (category10, tableau10, pastel8)")
	flags.BoolVar(&set.Color, "honor-color", false, "use the color column of the input when given")

	root.AddCommand(
		chartCommand("bar", "Draw a bar chart sized by value", &set, charts.RenderBar, barItem, checkBars),
		chartCommand("pie", "Draw a pie chart sized by percent", &set, charts.RenderPie, pieItem, checkWedges),
	)
	return root
}

type checkFunc func([]charts.Item) string

func chartCommand(name, short string, set *settings, render renderFunc, item itemFunc, check checkFunc) *cobra.Command {
	cmd := cobra.Command{
		Use:   name + " [file.csv...]",
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			box, err := charts.ParseViewBox(set.ViewBox)
			if err != nil {
				return err
			}
			r := runner{
				settings: *set,
				box:      box,
				render:   render,
				item:     item,
				check:    check,
				warn: func(str string) {
					cmd.PrintErrln(str)
				},
			}
			switch {
			case len(args) == 0:
				return r.runSample()
			case len(args) == 1 && set.Dir == "":
				return r.runFile(slices.Fst(args), set.Output)
			case set.Dir == "":
				return fmt.Errorf("%d input files given: --dir is required", len(args))
			default:
				return r.runFiles(cmd, args)
			}
		},
	}
	return &cmd
}

type runner struct {
	settings
	box    charts.ViewBox
	render renderFunc
	item   itemFunc
	check  checkFunc
	warn   func(string)
}

func (r runner) runSample() error {
	return r.draw(nil, r.Output, "sample")
}

func (r runner) runFile(file, output string) error {
	data, err := readItems(file, r.item)
	if err != nil {
		return err
	}
	return r.draw(data, output, file)
}

func (r runner) runFiles(cmd *cobra.Command, files []string) error {
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return err
	}
	grp, ctx := errgroup.WithContext(cmd.Context())
	for _, f := range files {
		file := f
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			output := filepath.Join(r.Dir, getIdent(file)+".svg")
			return r.runFile(file, output)
		})
	}
	return grp.Wait()
}

func (r runner) draw(data []charts.Item, output, origin string) error {
	doc := charts.NewDocument()
	if _, err := doc.Create(r.ID, r.box); err != nil {
		return err
	}
	opts := charts.Options{
		ID:     r.ID,
		Data:   data,
		Colors: r.colors(),
	}
	if _, err := r.render(doc, opts); err != nil {
		return fmt.Errorf("%s: %w", origin, err)
	}
	if data == nil {
		data = charts.SampleData()
	}
	if msg := r.check(data); msg != "" {
		r.warn(fmt.Sprintf("%s: %s", origin, msg))
	}
	return writeDocument(doc, output)
}

// colors creates a new color source on each call. Files rendered in parallel
// never share a random source.
func (r runner) colors() charts.ColorFunc {
	var colors charts.ColorFunc
	if p, ok := charts.PaletteByName(r.Palette); ok {
		colors = p.Colors()
	} else if r.Seed != 0 {
		colors = charts.RandomPastel(rand.New(rand.NewSource(r.Seed)))
	} else {
		colors = charts.RandomPastel(nil)
	}
	if r.Color {
		colors = charts.ItemColors(colors)
	}
	return colors
}

func writeDocument(doc *charts.Document, file string) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return doc.Render(w)
}

func checkBars(data []charts.Item) string {
	if len(data) > 0 && charts.MaxValue(data) == 0 {
		return "no positive value found, bars have no width"
	}
	return ""
}

const percentTolerance = 0.001

func checkWedges(data []charts.Item) string {
	sum := charts.SumPercent(data)
	if math.Abs(sum-1) > percentTolerance {
		return fmt.Sprintf("percents add up to %s instead of 1", strconv.FormatFloat(sum, 'f', -1, 64))
	}
	return ""
}

func getIdent(file string) string {
	file = filepath.Base(file)
	for {
		e := filepath.Ext(file)
		if e == "" {
			break
		}
		file = strings.TrimSuffix(file, e)
	}
	return file
}

type CSVError struct {
	File string
	Line int
	Err  error
}

func (e CSVError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Err)
}

func (e CSVError) Unwrap() error {
	return e.Err
}

var ErrColumns = errors.New("expected label,number[,color] columns")

type itemFunc func(label string, number float64) charts.Item

func barItem(label string, value float64) charts.Item {
	return charts.Item{
		Label: label,
		Value: value,
	}
}

func pieItem(label string, percent float64) charts.Item {
	return charts.NewItem(label, percent)
}

func readItems(file string, get itemFunc) ([]charts.Item, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return parseItems(r, file, get)
}

func parseItems(r io.Reader, file string, get itemFunc) ([]charts.Item, error) {
	var (
		rs   = csv.NewReader(r)
		data = []charts.Item{}
		line = 1
	)
	rs.FieldsPerRecord = -1
	rs.TrimLeadingSpace = true
	if _, err := rs.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return data, nil
		}
		return nil, CSVError{File: file, Line: line, Err: err}
	}
	for {
		row, err := rs.Read()
		line++
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, CSVError{File: file, Line: line, Err: err}
		}
		if len(row) < 2 || len(row) > 3 {
			return nil, CSVError{File: file, Line: line, Err: ErrColumns}
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(row[1]), 64)
		if err != nil {
			return nil, CSVError{File: file, Line: line, Err: err}
		}
		it := get(slices.Fst(row), num)
		if len(row) == 3 {
			it.Color = strings.TrimSpace(slices.Lst(row))
		}
		data = append(data, it)
	}
	return data, nil
}
