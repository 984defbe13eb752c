package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/cachehound/cachehound/pkg/utils"
)

// Theme colors
var (
	Primary   = lipgloss.Color("#7C3AED")
	Secondary = lipgloss.Color("#A78BFA")
	Success   = lipgloss.Color("#10B981")
	Warning   = lipgloss.Color("#F59E0B")
	Danger    = lipgloss.Color("#EF4444")
	Info      = lipgloss.Color("#3B82F6")
	Cyan      = lipgloss.Color("#06B6D4")
	TextDim   = lipgloss.Color("#9CA3AF")
)

// Common styles
var (
	ScanStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	RunningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Success)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true)

	FileNameStyle = lipgloss.NewStyle().
			Bold(true)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	CategoryStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	PromptStyle = lipgloss.NewStyle().
			Foreground(Warning)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Size unit styles, largest unit hottest color
var sizeUnitStyles = map[string]lipgloss.Style{
	"TB": lipgloss.NewStyle().Foreground(Danger),
	"GB": lipgloss.NewStyle().Foreground(Warning),
	"MB": lipgloss.NewStyle().Foreground(Success),
	"KB": lipgloss.NewStyle().Foreground(Info),
	"B":  lipgloss.NewStyle().Foreground(Primary),
}

// RenderSize formats bytes and colors the result by its unit
func RenderSize(bytes int64) string {
	formatted := utils.FormatBytes(bytes)
	_, unit := utils.FormatBytesParts(bytes)

	style, ok := sizeUnitStyles[unit]
	if !ok {
		return formatted
	}
	return style.Render(formatted)
}

// SetColorMode forces or disables color output. "auto" (or anything else)
// leaves detection to the terminal profile.
func SetColorMode(mode string) {
	switch mode {
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
