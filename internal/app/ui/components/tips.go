package components

import "github.com/charmbracelet/lipgloss"

// Tip styles
var (
	tipKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	tipDescStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
)

func tipKey(k string) string  { return tipKeyStyle.Render(k) }
func tipDesc(d string) string { return tipDescStyle.Render(d) }

// Tips contains helpful hints displayed in the footer
var Tips = []string{
	tipDesc("Only ") + tipKey("Online") + tipDesc(" robots accept a connection"),
	tipDesc("Press ") + tipKey("m") + tipDesc(" then ") + tipKey("p") + tipDesc(" to review past missions"),
	tipDesc("On the dashboard press ") + tipKey("c") + tipDesc(" for chemicals or ") + tipKey("g") + tipDesc(" for the map"),
	tipDesc("Click the video feed to open the map"),
	tipDesc("List robots without the TUI with ") + tipKey("sewerlink robots"),
	tipDesc("Edit ") + tipKey("fixtures.yaml") + tipDesc(" with watch enabled to reload data live"),
	tipDesc("Use ") + tipKey("j/k") + tipDesc(" or arrows to navigate"),
	tipDesc("Press ") + tipKey("t") + tipDesc(" to hide these tips"),
}
