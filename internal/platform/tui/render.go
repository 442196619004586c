package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kolor/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display
// using the default lipgloss renderer.
func RenderScreen(s *core.Screen) string {
	return renderScreen(lipgloss.DefaultRenderer(), s)
}

// renderScreen groups adjacent cells with the same ink to minimize ANSI
// escape sequences.
func renderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Ink]lipgloss.Style)
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startInk := s.GetCell(x, y).Ink

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Ink != startInk {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if startInk == (core.Ink{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[startInk]
			if !ok {
				style = inkStyle(r, startInk)
				styles[startInk] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// inkStyle builds the lipgloss style for an ink. Colors are given as hex,
// lipgloss degrades them to the terminal's profile.
func inkStyle(r *lipgloss.Renderer, ink core.Ink) lipgloss.Style {
	style := r.NewStyle()
	if ink.HasFg {
		style = style.Foreground(lipgloss.Color(ink.Fg.Hex()))
	}
	if ink.HasBg {
		style = style.Background(lipgloss.Color(ink.Bg.Hex()))
	}
	if ink.Bold {
		style = style.Bold(true)
	}
	return style
}
