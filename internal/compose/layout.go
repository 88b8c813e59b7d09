package compose

import "strings"

const (
	// Character budget: approximate glyph width at the large font size
	// against the canvas width minus a fixed margin.
	textMargin   = 100
	avgCharWidth = 18

	linePadding = 10 // extra height per quote line
	authorGap   = 30 // reserved before the author line
	authorStep  = 20 // advanced before drawing the author line
)

// MaxChars returns the greedy wrap width in characters for a canvas
// width.
func MaxChars(width int) int {
	return (width - textMargin) / avgCharWidth
}

// Wrap splits text into greedy word-boundary lines of at most maxChars
// characters. A single word longer than maxChars is left unsplit and
// may overflow visually. Empty text yields one empty line.
func Wrap(text string, maxChars int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if len(current)+1+len(w) <= maxChars {
			current += " " + w
		} else {
			lines = append(lines, current)
			current = w
		}
	}
	return append(lines, current)
}

// textLine is one placed line: x,y is its top-left corner.
type textLine struct {
	text  string
	x, y  float64
	small bool
}

// layoutLines computes the vertically centered block of quote lines
// plus the author line. measure reports the rendered size of s at the
// large face, or at the small face when small is true. The computation
// is deterministic for fixed inputs and measurements.
func layoutLines(lines []string, author string, spec CanvasSpec, measure func(s string, small bool) (w, h float64)) []textLine {
	heights := make([]float64, len(lines))
	total := 0.0
	for i, line := range lines {
		_, h := measure(line, false)
		heights[i] = h + linePadding
		total += heights[i]
	}

	authorText := "- " + author
	aw, ah := measure(authorText, true)
	total += ah + authorGap

	y := (float64(spec.Height) - total) / 2
	placed := make([]textLine, 0, len(lines)+1)
	for i, line := range lines {
		w, _ := measure(line, false)
		placed = append(placed, textLine{
			text: line,
			x:    (float64(spec.Width) - w) / 2,
			y:    y,
		})
		y += heights[i]
	}

	y += authorStep
	placed = append(placed, textLine{
		text:  authorText,
		x:     (float64(spec.Width) - aw) / 2,
		y:     y,
		small: true,
	})
	return placed
}
