package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// Layout of the play area in screen characters.
const (
	cellWidth = 2 // each field cell is drawn two characters wide

	fieldW = engine.Width*cellWidth + 2 // +2 for borders
	fieldH = engine.VisibleHeight + 2
	panelW = 18
	gap    = 2

	minWidth  = fieldW + gap + panelW
	minHeight = fieldH
)

var shapeColors = map[engine.Shape]core.Color{
	engine.ShapeI: core.ColorCyan,
	engine.ShapeO: core.ColorYellow,
	engine.ShapeT: core.ColorMagenta,
	engine.ShapeJ: core.ColorBlue,
	engine.ShapeL: core.ColorOrange,
	engine.ShapeS: core.ColorGreen,
	engine.ShapeZ: core.ColorRed,
}

// screenSink receives display fragments from the machine and keeps the
// latest of each for drawing.
type screenSink struct {
	width    int
	height   int
	tooSmall bool

	field   engine.PlayfieldView
	next    engine.NextView
	score   engine.ScoreView
	clock   engine.PlaytimeView
	endgame *engine.EndgameView
}

func newScreenSink() *screenSink {
	return &screenSink{}
}

func (s *screenSink) resize(width, height int) {
	s.width = width
	s.height = height
	s.tooSmall = width < minWidth || height < minHeight
}

func (s *screenSink) ShowPlayfield(v engine.PlayfieldView) { s.field = v }
func (s *screenSink) ShowNext(v engine.NextView)           { s.next = v }
func (s *screenSink) ShowScore(v engine.ScoreView)         { s.score = v }
func (s *screenSink) ShowPlaytime(v engine.PlaytimeView)   { s.clock = v }
func (s *screenSink) ShowEndgame(v engine.EndgameView)     { s.endgame = &v }

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	v := g.view

	if v.tooSmall {
		renderTooSmall(dst, v.width, v.height)
		return
	}

	boardX := (v.width - minWidth) / 2
	boardY := (v.height - fieldH) / 2
	board := core.NewRect(boardX, boardY, fieldW, fieldH)

	dst.DrawBoxColor(board, core.ColorGray)
	renderField(dst, board.Inner(), &v.field)
	renderPanel(dst, board.Right()+gap, boardY, v)

	switch {
	case v.endgame != nil:
		lines := []string{v.endgame.Message}
		if v.endgame.Outcome == engine.OutcomeCleared {
			lines = append(lines, "Time "+formatClock(v.clock))
		} else {
			lines = append(lines, fmt.Sprintf("Score %d", v.score.Score))
		}
		lines = append(lines, "Press R to restart")
		drawOverlay(dst, board, lines...)
	case g.paused:
		drawOverlay(dst, board, "PAUSED", "Press P to resume")
	}
}

func renderTooSmall(dst *core.Screen, width, height int) {
	msg := "Window too small"
	y := height / 2
	dst.DrawText((width-len(msg))/2, y, msg)

	hint := fmt.Sprintf("Need %dx%d", minWidth, minHeight)
	dst.DrawText((width-len(hint))/2, y+1, hint)
}

// renderField draws the visible rows with row 0 at the bottom of area.
func renderField(dst *core.Screen, area core.Rect, field *engine.PlayfieldView) {
	for row := range engine.VisibleHeight {
		y := area.Bottom() - 1 - row
		for col := range engine.Width {
			x := area.X + col*cellWidth
			c := field.Cells[row][col]
			switch {
			case c.Flash:
				drawCell(dst, x, y, '█', core.ColorBrightWhite)
			case c.Layer == engine.LayerGhost:
				drawCell(dst, x, y, '░', core.ColorDarkGray)
			case c.Layer == engine.LayerNone:
				dst.SetCell(x+1, y, core.Cell{Rune: '.', Color: core.ColorDarkGray})
			default:
				drawCell(dst, x, y, '█', shapeColors[c.Shape])
			}
		}
	}
}

func drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	dst.SetCell(x, y, core.Cell{Rune: r, Color: c})
	dst.SetCell(x+1, y, core.Cell{Rune: r, Color: c})
}

// renderPanel draws the preview, score block and clear statistics.
func renderPanel(dst *core.Screen, x, y int, v *screenSink) {
	dst.DrawTextColor(x, y, "NEXT", core.ColorBrightWhite)
	for i, s := range v.next.Shapes {
		drawMini(dst, x, y+1+i*3, s)
	}

	y += 1 + engine.MaxPreview*3
	s := v.score
	dst.DrawText(x, y, fmt.Sprintf("SCORE %d", s.Score))
	dst.DrawText(x, y+1, fmt.Sprintf("LEVEL %d", s.Level))
	if s.Mode == engine.ModeSprint {
		dst.DrawText(x, y+2, fmt.Sprintf("LINES %d/%d", s.Lines, engine.SprintGoal))
	} else {
		dst.DrawText(x, y+2, fmt.Sprintf("LINES %d", s.Lines))
	}
	dst.DrawText(x, y+3, "TIME  "+formatClock(v.clock))

	dst.DrawTextColor(x, y+5, fmt.Sprintf("1x %-3d 2x %d", s.Stats[0], s.Stats[1]), core.ColorGray)
	dst.DrawTextColor(x, y+6, fmt.Sprintf("3x %-3d 4x %d", s.Stats[2], s.Stats[3]), core.ColorGray)

	hold := "HOLD ready"
	if v.next.HoldUsed {
		hold = "HOLD used"
	}
	dst.DrawTextColor(x, y+7, hold, core.ColorGray)
}

// drawMini draws a shape's spawn layout in two rows; every spawn layout lives
// in layout rows 1 and 2.
func drawMini(dst *core.Screen, x, y int, s engine.Shape) {
	t := engine.NewTetromino(s)
	for r := 1; r <= 2; r++ {
		for c := range engine.LayoutSize {
			if t.Layout[r][c] {
				drawCell(dst, x+c*cellWidth, y+r-1, '█', shapeColors[s])
			}
		}
	}
}

func formatClock(c engine.PlaytimeView) string {
	return fmt.Sprintf("%02d:%02d.%02d", c.Minutes, c.Seconds, c.Centiseconds)
}

// drawOverlay draws a boxed message centered on area.
func drawOverlay(dst *core.Screen, area core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(box.X+(boxW-len(line))/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "←/→: Move | ↓: Soft drop | ↑/X: Rotate | Space: Drop | C: Hold | P: Pause | Q: Quit"
}
