package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Model is the Bubble Tea side of a game. It forwards key presses to the
// game's command source and shows the newest frame from its FrameBox.
type Model struct {
	source *ChannelSource
	frames *FrameBox
	keys   KeyMap
	help   help.Model
	fps    int

	// resize forwards window size changes to the game; may be nil.
	resize func(w, h int)
	width  int
	height int

	frame    *core.Screen
	seq      uint64
	result   *snake.Result
	quitting bool
}

// NewModel creates a model that redraws fps times per second.
func NewModel(source *ChannelSource, frames *FrameBox, fps int) Model {
	h := help.New()
	h.ShowAll = false

	return Model{
		source: source,
		frames: frames,
		keys:   DefaultKeyMap(),
		help:   h,
		fps:    fps,
	}
}

// Init starts the redraw loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Once the game is over any key
// leaves.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.result != nil {
		m.quitting = true
		return m, tea.Quit
	}

	cmd, ok := m.keys.Command(msg)
	if !ok {
		return m, nil
	}
	m.source.Push(cmd)

	if cmd.Kind == core.CommandQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize records the terminal size and asks the game to draw at
// it from the next frame on. The game itself keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	if m.resize != nil {
		m.resize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick picks up the latest frame and the result, if any.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if frame, seq := m.frames.Latest(); seq != m.seq {
		m.frame = frame
		m.seq = seq
	}
	if m.result == nil {
		if res, ok := m.frames.Result(); ok {
			m.result = &res
		}
	}
	return m, tickCmd(m.fps)
}

// GameOver reports whether the game has finished.
func (m Model) GameOver() bool {
	return m.result != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.frame == nil {
		return "Starting..."
	}

	frame := m.fitFrame()
	if m.result != nil {
		frame = gameOverFrame(frame, *m.result)
	}
	return RenderScreen(frame) + "\n" + m.help.View(m.keys)
}

// fitFrame returns the latest frame cropped or padded to the window, so a
// frame drawn before a resize does not wrap.
func (m Model) fitFrame() *core.Screen {
	if m.width <= 0 || m.height <= 0 {
		return m.frame
	}
	w, h := m.width, max(m.height-helpHeight, 1)
	if m.frame.Width() == w && m.frame.Height() == h {
		return m.frame
	}
	frame := m.frame.Clone()
	frame.Resize(w, h)
	return frame
}

// gameOverFrame draws the final score box over a copy of the last frame.
func gameOverFrame(last *core.Screen, res snake.Result) *core.Screen {
	frame := last.Clone()

	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Game Over! Your score is %d", res.Score),
		reasonText(res.Reason),
		"",
		"Press any key to exit",
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2

	x := (frame.Width() - boxW) / 2
	y := (frame.Height() - boxH) / 2
	frame.FillRect(x, y, boxW, boxH, core.Cell{Rune: ' '})

	colors := []core.Color{core.ColorBrightRed, core.ColorWhite, core.ColorGray, core.ColorDefault, core.ColorYellow}
	for i, l := range lines {
		frame.DrawTextCentered(y+1+i, l, colors[i])
	}
	return frame
}

func reasonText(r snake.Reason) string {
	switch r {
	case snake.ReasonWall:
		return "You hit the wall"
	case snake.ReasonSelf:
		return "You bit yourself"
	case snake.ReasonBoardFull:
		return "You filled the board"
	case snake.ReasonQuit, snake.ReasonCancelled:
		return "Game abandoned"
	default:
		return ""
	}
}
