package cli

import (
	"github.com/charmbracelet/lipgloss"
)

type usageLine struct {
	command string
	summary string
}

var commands = []usageLine{
	{command: "sewerlink [run]", summary: "Open the console"},
	{command: "sewerlink robots [--all]", summary: "List robots, ignoring the fleet filter with --all"},
	{command: "sewerlink missions", summary: "List past missions"},
	{command: "sewerlink init [--force] [--dry-run]", summary: "Generate sewerlink.yaml and fixtures.yaml"},
	{command: "sewerlink version", summary: "Show version"},
	{command: "sewerlink help", summary: "Show help"},
}

var examples = []usageLine{
	{command: "sewerlink", summary: "Connect to a robot and start a mission"},
	{command: "sewerlink -f lab.yaml", summary: "Open the console over another fixture set"},
	{command: "sewerlink robots -a", summary: "Show every robot, filtered or not"},
	{command: "sewerlink init --dry-run", summary: "Preview the generated files"},
}

// renderHelp renders the usage page printed by the help command
func renderHelp() string {
	usage := make([]string, 0, len(commands))
	for _, c := range commands {
		usage = append(usage, bodyMedium.Render("  "+commandName.Render(c.command)+c.summary))
	}

	sample := make([]string, 0, len(examples))
	for _, e := range examples {
		sample = append(sample, bodyMedium.Render("  "+exampleCode.Render(e.command)+e.summary))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionHeader.Render("Usage:"),
		lipgloss.JoinVertical(lipgloss.Left, usage...),
		sectionHeader.Render("Examples:"),
		lipgloss.JoinVertical(lipgloss.Left, sample...),
		"",
		bodyMedium.Render("  "+commandName.Render("-f, --fixtures <file>")+"Use another fixtures file"),
		RenderFootnote(),
	) + "\n"
}
