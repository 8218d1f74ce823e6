package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubescan"
	"github.com/SeamusWaldron/cubescan/internal/classify"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// sticker renders one facelet as a coloured two-character block.
func sticker(c cubescan.Color) string {
	if !c.Valid() {
		return statusStyle.Render("..")
	}
	hex := classify.Canonical(c).Colorful().Hex()
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}

// faceRows renders a face as three rows of stickers. Absent faces render
// as dots.
func faceRows(s cubescan.State, face cubescan.Face) [3]string {
	var rows [3]string
	grid, ok := s.Get(face)
	for row := range 3 {
		var b strings.Builder
		for col := range 3 {
			if !ok {
				b.WriteString(statusStyle.Render(".."))
			} else {
				b.WriteString(sticker(grid.At(row, col)))
			}
			b.WriteString(" ")
		}
		rows[row] = b.String()
	}
	return rows
}

// renderNet draws the unfolded cube: up above, left front right back in
// the middle band, down below.
func renderNet(s cubescan.State) string {
	pad := strings.Repeat(" ", 9)
	var b strings.Builder

	for _, row := range faceRows(s, cubescan.FaceU) {
		b.WriteString(pad + row + "\n")
	}
	left := faceRows(s, cubescan.FaceL)
	front := faceRows(s, cubescan.FaceF)
	right := faceRows(s, cubescan.FaceR)
	back := faceRows(s, cubescan.FaceB)
	for row := range 3 {
		b.WriteString(left[row] + front[row] + right[row] + back[row] + "\n")
	}
	for _, row := range faceRows(s, cubescan.FaceD) {
		b.WriteString(pad + row + "\n")
	}
	return b.String()
}

// renderGrid draws a single face.
func renderGrid(s cubescan.State, face cubescan.Face) string {
	rows := faceRows(s, face)
	return strings.Join(rows[:], "\n") + "\n"
}

func stateSummary(s cubescan.State) string {
	switch {
	case s.IsComplete() && s.IsSolved():
		return solvedStyle.Render("SOLVED")
	case s.IsComplete():
		return statusStyle.Render("complete")
	default:
		return statusStyle.Render(fmt.Sprintf("%d of 6 faces captured", s.FaceCount()))
	}
}
