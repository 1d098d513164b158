package components

import (
	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/NimbleMarkets/ntcharts/linechart"
	"github.com/charmbracelet/lipgloss"
)

// RenderGraph draws samples as a braille line chart scaled to their range
func RenderGraph(samples []float64, width, height int, color lipgloss.Color) string {
	if len(samples) < 2 || width <= 0 || height <= 0 {
		return EmptyStateStyle.Render("No samples yet")
	}

	minY, maxY := samples[0], samples[0]
	for _, v := range samples {
		if v < minY {
			minY = v
		}

		if v > maxY {
			maxY = v
		}
	}

	if minY == maxY {
		minY--
		maxY++
	}

	if minY > 0 {
		minY = 0
	}

	lc := linechart.New(width, height, 0, float64(len(samples)-1), minY, maxY)

	for i := 0; i < len(samples)-1; i++ {
		lc.DrawBrailleLine(
			canvas.Float64Point{X: float64(i), Y: samples[i]},
			canvas.Float64Point{X: float64(i + 1), Y: samples[i+1]},
		)
	}

	lc.DrawXYAxisAndLabel()

	return lipgloss.NewStyle().Foreground(color).Render(lc.View())
}
