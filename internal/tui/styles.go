package tui

import (
	"burrow/internal/fs"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Header components
	userHostStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	pathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4"))

	// Entry kinds
	dirStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("4"))

	symlinkStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))

	execStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("2"))

	regularStyle = lipgloss.NewStyle()

	// Empty-directory notice
	emptyStyle = lipgloss.NewStyle().
			Reverse(true).
			Foreground(lipgloss.Color("1"))
)

// styleFor returns the style for an entry kind.
func styleFor(kind fs.Kind) lipgloss.Style {
	switch kind {
	case fs.Directory:
		return dirStyle
	case fs.Symlink, fs.SymlinkToDir:
		return symlinkStyle
	case fs.Executable:
		return execStyle
	default:
		return regularStyle
	}
}
