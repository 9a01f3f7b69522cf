package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

var ansiSeq = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hi", core.ColorRed)
	s.SetCell(3, 1, core.Cell{Rune: '@', Fg: core.ColorBlack, Bg: core.ColorBrightGreen})

	lines := strings.Split(stripANSI(RenderScreen(s)), "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if lines[0] != "hi    " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "hi    ")
	}
	if lines[1] != "   @  " {
		t.Errorf("line 1 = %q, expected %q", lines[1], "   @  ")
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}

func TestCellStylesCoverPalette(t *testing.T) {
	n := len(palette) + 1
	if len(cellStyles) != n*n {
		t.Errorf("cellStyles has %d entries, expected %d", len(cellStyles), n*n)
	}
	if _, ok := cellStyles[colorPair{core.ColorBrightYellow, core.ColorRed}]; !ok {
		t.Error("missing style for food colors")
	}
}
