// Package digits draws clock text as large block characters, in the style of
// a terminal multiplexer's clock.
package digits

import (
	"strings"
	"unicode/utf8"

	"github.com/tinytelemetry/pomo/internal/duration"
)

// Height is the number of lines in every rendered frame.
const Height = 5

const gap = " "

type glyph [Height]string

var glyphs = map[rune]glyph{
	'0': {"█████", "█   █", "█   █", "█   █", "█████"},
	'1': {"    █", "    █", "    █", "    █", "    █"},
	'2': {"█████", "    █", "█████", "█    ", "█████"},
	'3': {"█████", "    █", "█████", "    █", "█████"},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "█████", "    █", "█████"},
	'6': {"█████", "█    ", "█████", "█   █", "█████"},
	'7': {"█████", "    █", "    █", "    █", "    █"},
	'8': {"█████", "█   █", "█████", "█   █", "█████"},
	'9': {"█████", "█   █", "█████", "    █", "█████"},
	':': {"   ", " █ ", "   ", " █ ", "   "},
}

// Render returns the block-digit frame for a remaining second count. All
// lines have the same width; the width depends only on whether the count
// is below one hour (MM:SS) or not (HH:MM:SS).
func Render(seconds int) []string {
	text := duration.Format(seconds)

	var rows [Height]strings.Builder
	for i, r := range text {
		g := glyphs[r]
		for row := range rows {
			if i > 0 {
				rows[row].WriteString(gap)
			}
			rows[row].WriteString(g[row])
		}
	}

	lines := make([]string, Height)
	for row := range rows {
		lines[row] = rows[row].String()
	}
	return lines
}

// Width returns the column width of Render(seconds) without building it.
func Width(seconds int) int {
	text := duration.Format(seconds)
	w := 0
	for i, r := range text {
		if i > 0 {
			w += len(gap)
		}
		w += utf8.RuneCountInString(glyphs[r][0])
	}
	return w
}
