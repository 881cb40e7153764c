package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
	Yellow   = lipgloss.Color("#f9e2af")

	Title    = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted    = lipgloss.NewStyle().Foreground(Subtext0)
	Hot      = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good     = lipgloss.NewStyle().Foreground(Green)
	Bad      = lipgloss.NewStyle().Foreground(Red)
	Progress = lipgloss.NewStyle().Foreground(Green)
	Locked   = lipgloss.NewStyle().Foreground(Surface1)
)

// BackupStyle colours a backup status label.
func BackupStyle(status string) lipgloss.Style {
	switch status {
	case "saved", "connected":
		return Good
	case "saving":
		return lipgloss.NewStyle().Foreground(Yellow)
	case "error":
		return Bad
	}
	return Muted
}
