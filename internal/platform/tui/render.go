package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Board glyphs.
const (
	glyphWall  = '#'
	glyphFood  = '*'
	glyphBody  = 'o'
	glyphHead  = 'O'
	glyphEmpty = ' '
)

// hudHeight is the number of lines drawn above the board.
const hudHeight = 1

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// drawGame draws the HUD, the board and any overlay for snap. best is the
// stored high score. The board is centered; a too-small screen gets a
// resize notice instead.
func drawGame(s *core.Screen, snap snake.Snapshot, paused bool, best int) {
	s.Clear()

	if s.Width() < snap.Cols || s.Height() < snap.Rows+hudHeight {
		drawTooSmall(s, snap.Cols, snap.Rows+hudHeight)
		return
	}

	area := s.Bounds().Centered(snap.Cols, snap.Rows+hudHeight)
	drawHUD(s, area, snap, best)

	board := core.NewRect(area.X, area.Y+hudHeight, snap.Cols, snap.Rows)
	drawBoard(s, board, snap)

	switch {
	case !snap.Running:
		drawGameOver(s, board, snap)
	case paused:
		drawOverlay(s, board, core.ColorYellow, "PAUSED", "p to resume")
	}
}

// drawHUD puts the title on the left and the scores on the right. A board
// too narrow for both gets only the scores, centered on the screen.
func drawHUD(s *core.Screen, area core.Rect, snap snake.Snapshot, best int) {
	const title = "SNAKE"

	scores := fmt.Sprintf("Best: %d  Food: %d", max(best, snap.FoodEaten), snap.FoodEaten)
	if area.W <= len(title)+len(scores) {
		s.DrawTextCentered(area.Y, scores, core.ColorYellow)
		return
	}
	s.DrawText(area.X, area.Y, title, core.ColorBrightWhite)
	s.DrawText(area.Right()-len(scores), area.Y, scores, core.ColorYellow)
}

func drawBoard(s *core.Screen, board core.Rect, snap snake.Snapshot) {
	for row := range snap.Rows {
		for col := range snap.Cols {
			r, c := cellGlyph(snap, row, col)
			s.Set(board.X+col, board.Y+row, r, c)
		}
	}
}

func cellGlyph(snap snake.Snapshot, row, col int) (rune, core.Color) {
	switch snap.State(row, col) {
	case grid.Wall:
		return glyphWall, core.ColorGray
	case grid.Food:
		return glyphFood, core.ColorRed
	case grid.SnakeBody:
		if snap.IsHead(row, col) {
			return glyphHead, core.ColorBrightGreen
		}
		return glyphBody, core.ColorGreen
	default:
		return glyphEmpty, core.ColorDefault
	}
}

func drawGameOver(s *core.Screen, board core.Rect, snap snake.Snapshot) {
	title, color := "GAME OVER", core.ColorRed
	if snap.Outcome == snake.Won {
		title, color = "YOU ESCAPED", core.ColorBrightGreen
	}
	drawOverlay(s, board, color,
		title,
		fmt.Sprintf("Food eaten: %d", snap.FoodEaten),
		"r restart  q quit",
	)
}

// drawOverlay draws a boxed message centered over r.
func drawOverlay(s *core.Screen, r core.Rect, c core.Color, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := r.Centered(w+4, len(lines)+2)

	s.FillRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (box.W-len([]rune(l)))/2
		s.DrawText(x, box.Y+1+i, l, c)
	}
}

func drawTooSmall(s *core.Screen, needW, needH int) {
	mid := s.Height() / 2
	s.DrawTextCentered(mid-1, "Terminal too small", core.ColorYellow)
	s.DrawTextCentered(mid, fmt.Sprintf("need %dx%d, have %dx%d", needW, needH, s.Width(), s.Height()), core.ColorGray)
}
