package charts

import (
	"math"
	"strconv"
)

// Item is one record of a chart dataset. Pie charts read Percent, bar charts
// read Value. Color is only used by ItemColors.
type Item struct {
	Label   string
	Percent float64
	Value   float64
	Color   string
}

func NewItem(label string, percent float64) Item {
	return Item{
		Label:   label,
		Percent: percent,
	}
}

// SampleData is the dataset used when a chart is rendered without data. It
// only carries percents, so a bar chart drawn from it has degenerate bars.
func SampleData() []Item {
	return []Item{
		{Label: "Hydroelectric", Percent: .177, Color: "black"},
		{Label: "Biomass", Percent: .393, Color: "black"},
		{Label: "Wind", Percent: .369, Color: "black"},
		{Label: "solar", Percent: .061, Color: "black"},
	}
}

// MaxValue is the largest value of data, or 0 when none is positive.
func MaxValue(data []Item) float64 {
	var max float64
	for _, it := range data {
		if it.Value > max {
			max = it.Value
		}
	}
	return max
}

// SumPercent adds up the percents of data. Pie charts expect it to be close to 1.
func SumPercent(data []Item) float64 {
	var sum float64
	for _, it := range data {
		sum += it.Percent
	}
	return sum
}

// FormatPercent gives the percent of a fraction truncated to one decimal.
func FormatPercent(percent float64) string {
	v := math.Floor(percent*1000) / 10
	return formatNumber(v) + "%"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
