package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/mines/internal/grid"
	"github.com/vancomm/mines/internal/session"
)

var (
	countColors = [9]lipgloss.Color{
		"",
		lipgloss.Color("#0000ff"), // blue
		lipgloss.Color("#008000"), // green
		lipgloss.Color("#ff0000"), // red
		lipgloss.Color("#00008b"), // dark blue
		lipgloss.Color("#a52a2a"), // brown
		lipgloss.Color("#00ffff"), // cyan
		lipgloss.Color("#000000"), // black
		lipgloss.Color("#808080"), // grey
	}

	hiddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	zeroStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#333333"))

	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff4444")).
			Bold(true)

	markStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffcc00"))

	mineStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#ff4444")).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)

	indexStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444466"))

	hudStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444466")).
			Padding(0, 1)
)

// Cell returns the styled glyph for one snapshot cell.
func Cell(c byte, mine bool) string {
	switch {
	case mine && c != 'F':
		return mineStyle.Render("*")
	case c == 'F':
		return flagStyle.Render("F")
	case c == '?':
		return markStyle.Render("?")
	case c == '0':
		return zeroStyle.Render(".")
	case '1' <= c && c <= '8':
		return lipgloss.NewStyle().
			Foreground(countColors[c-'0']).
			Bold(true).
			Render(string(c))
	default:
		return hiddenStyle.Render("#")
	}
}

// Board draws the grid with column and row indices.
func Board(snap session.Snapshot) string {
	mines := make(map[grid.Point]bool, len(snap.Mines))
	for _, p := range snap.Mines {
		mines[p] = true
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for x := range snap.Width {
		sb.WriteString(indexStyle.Render(fmt.Sprintf("%d", x%10)))
		sb.WriteByte(' ')
	}
	sb.WriteByte('\n')

	for y, row := range snap.Grid {
		sb.WriteString(indexStyle.Render(fmt.Sprintf("%2d", y)))
		sb.WriteByte(' ')
		for x := range len(row) {
			sb.WriteString(Cell(row[x], mines[grid.Point{X: x, Y: y}]))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func status(snap session.Snapshot) string {
	switch snap.State {
	case "won":
		return fmt.Sprintf("You win. %.3f s", float64(snap.ElapsedMs)/1000)
	case "lost":
		return "You failed."
	case "ready":
		return "Open any cell to start."
	}
	if snap.Timer == "paused" {
		return "Paused."
	}
	return ""
}

// Snapshot draws the header with the mines-left counter and the timer
// followed by the board.
func Snapshot(snap session.Snapshot) string {
	hud := fmt.Sprintf(
		"mines left: %d   time: %d   %dx%d/%d",
		snap.MinesLeft, snap.ElapsedMs/1000, snap.Width, snap.Height, snap.MineCount,
	)
	if msg := status(snap); msg != "" {
		hud += "\n" + msg
	}
	return lipgloss.JoinVertical(lipgloss.Left, hudStyle.Render(hud), Board(snap))
}
