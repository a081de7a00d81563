package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/floatsync/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BucketStyle returns the style used for a classification bucket.
func BucketStyle(b domain.Bucket) lipgloss.Style {
	switch b {
	case domain.BucketCritical:
		return StyleRed
	case domain.BucketConnected:
		return StyleBlue
	case domain.BucketIsolated:
		return StyleYellow
	default:
		return StyleDim
	}
}

// StatusIndicator returns a colored run status such as "● SUCCEEDED".
func StatusIndicator(s domain.RunStatus) string {
	label := "● " + strings.ToUpper(strings.ReplaceAll(string(s), "_", " "))
	switch s {
	case domain.RunSucceeded:
		return StyleGreen.Render(label)
	case domain.RunFailed:
		return StyleRed.Render(label)
	case domain.RunDryRun:
		return StyleYellow.Render(label)
	default:
		return StyleDim.Render(label)
	}
}

// Header renders a section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
