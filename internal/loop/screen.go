package loop

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/tomz197/asshpong/internal/draw"
	"github.com/tomz197/asshpong/internal/loop/config"
	"github.com/tomz197/asshpong/internal/object"
	"github.com/tomz197/asshpong/internal/round"
)

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	Snapshot          round.Snapshot
	State             GameState
	Inactive          bool
	InactiveRemaining int       // Seconds until an idle session is disconnected
	ShutdownRemaining int       // Seconds until the shutdown notice disconnects
	Now               time.Time // Drives blinking prompts
}

// Renderer draws session frames.
type Renderer interface {
	Render(f Frame) error
}

// TerminalRenderer draws frames on an ANSI terminal using a scaled half-block canvas.
type TerminalRenderer struct {
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	termSizeFunc draw.TermSizeFunc
	styles       screenStyles
	prevState    GameState
	wasInactive  bool
}

type screenStyles struct {
	score     lipgloss.Style
	countdown lipgloss.Style
	title     lipgloss.Style
	hint      lipgloss.Style
	warning   lipgloss.Style
}

func newScreenStyles(r *lipgloss.Renderer) screenStyles {
	return screenStyles{
		score:     r.NewStyle().Bold(true),
		countdown: r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		title:     r.NewStyle().Foreground(lipgloss.Color("14")),
		hint:      r.NewStyle().Faint(true),
		warning:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

// NewTerminalRenderer creates a renderer drawing an arena of the given logical
// size to w. A nil termSizeFunc reads the size of os.Stdout.
func NewTerminalRenderer(w io.Writer, termSizeFunc draw.TermSizeFunc, arenaWidth, arenaHeight float64) *TerminalRenderer {
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, arenaWidth, arenaHeight)
	canvas.SetOffset(offsetCol, offsetRow)

	return &TerminalRenderer{
		canvas:       canvas,
		chunkWriter:  draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSizeFunc: termSizeFunc,
		styles:       newScreenStyles(lipgloss.NewRenderer(w)),
	}
}

// Render draws the frame and flushes it to the terminal.
func (t *TerminalRenderer) Render(f Frame) error {
	t.updateScreen()

	// On game state or inactivity transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	if f.State != t.prevState || f.Inactive != t.wasInactive {
		draw.ClearScreen(t.chunkWriter)
		t.canvas.ForceRedraw()
		t.prevState = f.State
		t.wasInactive = f.Inactive
	}

	t.canvas.Clear()
	if f.State == GameStatePlaying && !f.Inactive {
		t.drawArena(f.Snapshot)
	}

	// Render canvas to terminal
	t.canvas.Render(t.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	t.canvas.RenderBorder(t.chunkWriter)

	// Draw UI overlay
	t.drawUI(f)

	return t.chunkWriter.Flush()
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (t *TerminalRenderer) updateScreen() {
	termWidth, termHeight, err := t.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != t.canvas.TerminalWidth() || renderHeight != t.canvas.TerminalHeight() ||
		offsetCol != t.canvas.OffsetCol() || offsetRow != t.canvas.OffsetRow() {
		draw.ClearScreen(t.chunkWriter)
		t.canvas.ForceRedraw()
	}

	t.canvas.Resize(renderWidth, renderHeight)
	t.canvas.SetOffset(offsetCol, offsetRow)
	t.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = termWidth
	renderHeight = termHeight
	if renderWidth > config.MaxTermWidth {
		renderWidth = config.MaxTermWidth
	}
	if renderHeight > config.MaxTermHeight {
		renderHeight = config.MaxTermHeight
	}
	offsetCol = (termWidth - renderWidth) / 2
	offsetRow = (termHeight - renderHeight) / 2
	return
}

// drawArena draws the centre line, both paddles and the ball.
func (t *TerminalRenderer) drawArena(snap round.Snapshot) {
	t.canvas.DashedVLine(snap.Arena.W/2, config.CenterLineDash, config.CenterLineGap)
	for _, r := range []object.Rect{snap.Left, snap.Right, snap.Ball} {
		t.canvas.FillRect(r.X, r.Y, r.W, r.H)
	}
}

// drawUI draws the text overlay for the current screen.
func (t *TerminalRenderer) drawUI(f Frame) {
	termWidth := t.canvas.TerminalWidth()
	termHeight := t.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if f.State == GameStateShutdown {
		t.drawShutdownScreen(centerX, centerY, f.ShutdownRemaining)
		return
	}

	if f.Inactive {
		t.drawInactivityScreen(centerX, centerY, f.InactiveRemaining)
		return
	}

	switch f.State {
	case GameStatePlaying:
		t.drawPlayingHUD(termWidth, termHeight, f.Snapshot)
	case GameStateStart:
		t.drawStartScreen(centerX, centerY, f.Now)
	}
}

// writeText writes s at the 1-based canvas position and marks the cells so
// the canvas repaints them once the text is gone.
func (t *TerminalRenderer) writeText(col, row int, s string) {
	if col < 1 {
		col = 1
	}
	t.chunkWriter.WriteAt(col, row, s)
	t.canvas.MarkTextDirty(col, row, lipgloss.Width(s))
}

// writeCentered writes s horizontally centred on centerX.
func (t *TerminalRenderer) writeCentered(centerX, row int, s string) {
	t.writeText(centerX-lipgloss.Width(s)/2, row, s)
}

// drawPlayingHUD draws the score pair, the countdown and the key legend.
// Scores and countdown are placed in arena coordinates so they stay over
// their half of the table whatever the terminal size.
func (t *TerminalRenderer) drawPlayingHUD(termWidth, termHeight int, snap round.Snapshot) {
	st := t.styles
	arena := snap.Arena

	scoreY := arena.H * config.ScoreInset
	leftCol, scoreRow := t.canvas.LogicalToTerminal(arena.W/4, scoreY)
	rightCol, _ := t.canvas.LogicalToTerminal(arena.W*3/4, scoreY)
	t.writeCentered(leftCol, scoreRow, st.score.Render(strconv.Itoa(snap.Score.Left)))
	t.writeCentered(rightCol, scoreRow, st.score.Render(strconv.Itoa(snap.Score.Right)))

	if snap.Countdown != "" {
		col, row := t.canvas.LogicalToTerminal(arena.W/2, arena.H*config.CountdownHeight)
		t.writeCentered(col, row, st.countdown.Render(snap.Countdown))
	}

	hint := "N new game   Q quit"
	if lipgloss.Width(hint) < termWidth {
		t.writeCentered(termWidth/2, termHeight, st.hint.Render(hint))
	}
}

// drawStartScreen draws the title screen.
func (t *TerminalRenderer) drawStartScreen(centerX, centerY int, now time.Time) {
	// ASCII art title (figlet "small" font)
	titleArt := []string{
		`  ___  ___  _  _  ___  `,
		` | _ \/ _ \| \| |/ __| `,
		` |  _/ (_) | .` + "`" + ` | (_ | `,
		` |_|  \___/|_|\_|\___| `,
		`                       `,
	}

	// Find max width for centering
	titleWidth := 0
	for _, line := range titleArt {
		if len(line) > titleWidth {
			titleWidth = len(line)
		}
	}

	st := t.styles

	// Draw title art centered
	titleStartY := centerY - 7
	for i, line := range titleArt {
		t.writeText(centerX-titleWidth/2, titleStartY+i, st.title.Render(line))
	}

	// Subtitle
	subtitle := "~ Two players, one keyboard ~"
	t.writeCentered(centerX, titleStartY+len(titleArt)+1, subtitle)

	// Controls section
	controlsY := titleStartY + len(titleArt) + 3
	t.writeCentered(centerX, controlsY, "Controls")

	controlLines := []string{
		"W / S  . . . . . . .  Left paddle",
		"Up Down / I K  . .   Right paddle",
		"N  . . . . . . . . . . . New game",
		"Q  . . . . . . . . . . . .   Quit",
	}
	for i, line := range controlLines {
		t.writeCentered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	if now.UnixMilli()/600%2 == 0 {
		t.writeCentered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (t *TerminalRenderer) drawInactivityScreen(centerX, centerY, remaining int) {
	t.writeCentered(centerX, centerY-2, t.styles.warning.Render("INACTIVITY WARNING"))

	msg := fmt.Sprintf("You have been inactive for too long. You will be disconnected in %d seconds.", remaining)
	t.writeCentered(centerX, centerY, msg)

	t.writeCentered(centerX, centerY+2, "Press any key to continue")
}

// drawShutdownScreen draws the server shutdown notification screen.
func (t *TerminalRenderer) drawShutdownScreen(centerX, centerY, remaining int) {
	t.writeCentered(centerX, centerY-3, t.styles.warning.Render("SERVER SHUTTING DOWN"))
	t.writeCentered(centerX, centerY-1, "The server is restarting for maintenance.")
	t.writeCentered(centerX, centerY, "Please reconnect in a moment.")
	t.writeCentered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %d seconds...", remaining))
	t.writeCentered(centerX, centerY+4, "Press Q to disconnect now")
}

var _ Renderer = (*TerminalRenderer)(nil)
