package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2

var (
	headCell  = core.Cell{Rune: '@', Fg: core.ColorBlack, Bg: core.ColorBrightGreen}
	bodyCell  = core.Cell{Rune: 'o', Fg: core.ColorBlack, Bg: core.ColorGreen}
	foodCell  = core.Cell{Rune: '*', Fg: core.ColorBrightYellow, Bg: core.ColorRed}
	floorCell = core.Cell{Rune: ' ', Bg: core.ColorBlack}
	wallCell  = core.Cell{Rune: '#', Fg: core.ColorGray}
)

// layout describes how board cells map onto the display.
type layout struct {
	cellW, cellH int // Display cells per board cell
	originX      int // Display column of board x = 0
	originY      int // Display row of board y = 0
	fits         bool
}

// computeLayout scales the board into a w×h display below the HUD,
// keeping one column/row for the frame on each side. Board cells are
// at most twice as wide as they are tall.
func (g *Game) computeLayout(w, h int) layout {
	bw, bh := int(g.width), int(g.height)
	availW := w - 2
	availH := h - hudHeight - 2

	l := layout{fits: availW >= bw && availH >= bh}
	if !l.fits {
		return l
	}
	l.cellH = availH / bh
	l.cellW = min(availW/bw, 2*l.cellH)
	l.cellH = min(l.cellH, l.cellW)

	frameW := bw*l.cellW + 2
	l.originX = (w-frameW)/2 + 1
	l.originY = hudHeight + 1
	return l
}

// render draws the current state into a fresh frame and hands it to the
// sink, first applying any pending Resize.
func (g *Game) render() {
	if p := g.resize.Swap(0); p != 0 {
		g.screenW, g.screenH = int(p>>32), int(uint32(p))
	}
	frame := core.NewScreen(g.screenW, g.screenH)
	g.Render(frame)
	g.sink.Present(frame)
}

// Render draws the HUD, the framed board, the snake and the food into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	l := g.computeLayout(dst.Width(), dst.Height())
	if !l.fits {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	bw, bh := int(g.width)*l.cellW, int(g.height)*l.cellH
	dst.FillRect(l.originX-1, l.originY-1, bw+2, bh+2, wallCell)
	dst.FillRect(l.originX, l.originY, bw, bh, floorCell)

	if g.hasFood {
		g.drawBoardCell(dst, l, g.food, foodCell)
	}
	for i, seg := range g.snake.body {
		c := bodyCell
		if i == 0 {
			c = headCell
		}
		g.drawBoardCell(dst, l, seg, c)
	}
}

func (g *Game) drawBoardCell(dst *core.Screen, l layout, p core.Point, c core.Cell) {
	dst.FillRect(l.originX+int(p.X)*l.cellW, l.originY+int(p.Y)*l.cellH, l.cellW, l.cellH, c)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  Speed: %d/%d  Length: %d",
		g.score, g.speed, g.timing.MaxSpeed, g.snake.Len())
	dst.DrawText(0, 0, hud, core.ColorBrightGreen)

	for x := range dst.Width() {
		dst.SetCell(x, 1, core.Cell{Rune: '─', Fg: core.ColorGray})
	}
}
