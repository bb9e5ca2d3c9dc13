package formatter

import (
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShareBar renders a compact bar for a fraction of the day's total,
// like ████░░░░. Fractions are clamped to [0, 1].
func RenderShareBar(frac float64, width int) string {
	frac = min(max(frac, 0), 1)
	if width < 2 {
		width = 2
	}
	filled := min(int(frac*float64(width)+0.5), width)
	return StyleBlue.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}
