package charts

import (
	"math/rand"
	"strings"
)

type Palette []string

var (
	Category10 Palette
	Tableau10  Palette
	Pastel8    Palette
)

func init() {
	Category10 = splitColorString("1f77b4ff7f0e2ca02cd627289467bd8c564be377c27f7f7fbcbd2217becf")
	Tableau10 = splitColorString("4e79a7f28e2ce1575976b7b259a14fedc949af7aa1ff9da79c755fbab0ab")
	Pastel8 = splitColorString("b3e2cdfdcdaccbd5e8f4cae4e6f5c9fff2aef1e2cccccccc")
}

func splitColorString(str string) Palette {
	var arr Palette
	for i := 0; i+6 <= len(str); i += 6 {
		arr = append(arr, "#"+str[i:i+6])
	}
	return arr
}

// PaletteByName returns one of the builtin palettes. ok is false when the
// name is unknown.
func PaletteByName(name string) (Palette, bool) {
	switch strings.ToLower(name) {
	case "category10", "category":
		return Category10, true
	case "tableau10", "tableau":
		return Tableau10, true
	case "pastel8", "pastel":
		return Pastel8, true
	default:
		return nil, false
	}
}

// ColorFunc gives the fill of the i-th item of a chart.
type ColorFunc func(int, Item) string

// pastelDigits repeats the upper half of the hex digits so that any index in
// [0, 16) picks one of 8..F with the same probability.
const pastelDigits = "89ABCDEF89ABCDEF"

func randomPastel(rnd *rand.Rand) string {
	var str strings.Builder
	str.Grow(7)
	str.WriteByte('#')
	for i := 0; i < 6; i++ {
		var n int
		if rnd == nil {
			n = rand.Intn(len(pastelDigits))
		} else {
			n = rnd.Intn(len(pastelDigits))
		}
		str.WriteByte(pastelDigits[n])
	}
	return str.String()
}

// RandomPastel draws a new pastel color for every item. The color set on the
// item is ignored. A nil source uses the global one of math/rand.
func RandomPastel(rnd *rand.Rand) ColorFunc {
	return func(_ int, _ Item) string {
		return randomPastel(rnd)
	}
}

func (p Palette) Colors() ColorFunc {
	return func(i int, _ Item) string {
		if len(p) == 0 {
			return currentColour
		}
		return p[i%len(p)]
	}
}

// ItemColors uses the color given by the item when there is one and asks
// fallback otherwise.
func ItemColors(fallback ColorFunc) ColorFunc {
	return func(i int, it Item) string {
		if it.Color != "" {
			return it.Color
		}
		return fallback(i, it)
	}
}

func IsPastel(color string) bool {
	if len(color) != 7 || color[0] != '#' {
		return false
	}
	for _, c := range color[1:] {
		if !strings.ContainsRune(pastelDigits, c) {
			return false
		}
	}
	return true
}
