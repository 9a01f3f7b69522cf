package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// palette maps core colors to ANSI colors. ColorDefault is absent and
// leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorGray:         lipgloss.Color("245"),
}

type colorPair struct {
	fg, bg core.Color
}

// cellStyles holds a style for every fg/bg combination. It is built once
// and only read afterwards, so SSH sessions can share it.
var cellStyles = buildCellStyles()

func buildCellStyles() map[colorPair]lipgloss.Style {
	colors := []core.Color{core.ColorDefault}
	for c := range palette {
		colors = append(colors, c)
	}

	styles := make(map[colorPair]lipgloss.Style, len(colors)*len(colors))
	for _, fg := range colors {
		for _, bg := range colors {
			style := lipgloss.NewStyle()
			if c, ok := palette[fg]; ok {
				style = style.Foreground(c)
			}
			if c, ok := palette[bg]; ok {
				style = style.Background(c)
			}
			styles[colorPair{fg, bg}] = style
		}
	}
	return styles
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			pair := colorPair{start.Fg, start.Bg}

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != pair.fg || cell.Bg != pair.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := cellStyles[pair]
			if !ok {
				style = cellStyles[colorPair{}]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
