package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across screens
var (
	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	IconStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	SeparatorStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2, 0, 2)

	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Padding(0, 1)

	StatsStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	CardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(FgBorder).
			Padding(0, 1)

	SelectedCardStyle = CardStyle.
				BorderForeground(FgPrimary)

	SectionTitleStyle = lipgloss.NewStyle().
				Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	ValueStyle = lipgloss.NewStyle().
			Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(FgInverse).
			Background(FgPrimary).
			Padding(0, 1)

	FocusedButtonStyle = ButtonStyle.
				Bold(true).
				Underline(true)

	DisabledButtonStyle = lipgloss.NewStyle().
				Foreground(FgDisabled).
				Background(BgSelection).
				Padding(0, 1)

	RecStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgDanger)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(FgDanger)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			MarginTop(1)

	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(FgPrimary).
			Padding(0, 1)
)
