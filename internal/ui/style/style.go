// Package style holds the colors and glyphs shared by modup's terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Blue   = lipgloss.Color("#2F81F7")
	Gray   = lipgloss.Color("#6E7781")
	Green  = lipgloss.Color("#1A7F37")
	Red    = lipgloss.Color("#CF222E")
	Yellow = lipgloss.Color("#BF8700")
)

// Glyphs.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Bullet  = "•"
)
