// Package correct repairs implausible colour distributions on a single
// captured face. Every rule is a heuristic for a known lighting confusion
// (yellow/orange, orange/red, white/yellow, yellow/blue) and only looks at
// the nine cells of one face. A face showing a single colour is a solved
// face and is never corrected.
package correct

import (
	"fmt"

	"github.com/SeamusWaldron/cubescan/pkg/types"
)

// Rule names one correction heuristic.
type Rule string

const (
	RuleExcessYellow    Rule = "excess-yellow"
	RuleExcessOrange    Rule = "excess-orange"
	RuleWhiteYellowSwap Rule = "white-yellow-swap"
	RuleOrangeToRed     Rule = "orange-to-red"
	RuleYellowToBlue    Rule = "yellow-to-blue"
	RuleBlueToYellow    Rule = "blue-to-yellow"
)

// Change records one relabelled cell.
type Change struct {
	Row  int
	Col  int
	From types.Color
	To   types.Color
	Rule Rule
}

func (c Change) String() string {
	return fmt.Sprintf("(%d,%d) %s->%s [%s]", c.Row, c.Col, c.From, c.To, c.Rule)
}

// maxPasses bounds the fixed-point iteration.
const maxPasses = 9

// Correct applies the rule pass until the grid stops changing and returns the
// corrected grid with one Change per relabelled cell, in scan order. The
// result is a fixed point, so correcting it again changes nothing.
func Correct(cells [3][3]types.Color) ([3][3]types.Color, []Change) {
	orig := cells
	rules := make(map[int]Rule)

	for range maxPasses {
		next := pass(cells, rules)
		if next == cells {
			break
		}
		cells = next
	}

	var changes []Change
	for i := range 9 {
		r, c := i/3, i%3
		if orig[r][c] != cells[r][c] {
			changes = append(changes, Change{Row: r, Col: c, From: orig[r][c], To: cells[r][c], Rule: rules[i]})
		}
	}
	return cells, changes
}

// pass runs every rule once, in order, recounting between rules. The last
// rule to touch a cell is recorded in rules.
func pass(g [3][3]types.Color, rules map[int]Rule) [3][3]types.Color {
	n := counts(g)
	if g[1][1] <= types.Orange && n[g[1][1]] == 9 {
		return g
	}
	if n[types.Yellow] > 6 && n[types.Orange] < 3 {
		relabel(&g, types.Yellow, types.Orange, n[types.Yellow]-6, anyCell, RuleExcessYellow, rules)
	}

	n = counts(g)
	if n[types.Orange] > 6 && n[types.Red] < 3 {
		relabel(&g, types.Orange, types.Red, n[types.Orange]-6, anyCell, RuleExcessOrange, rules)
	}

	if g[1][1] == types.White && hasOffCenter(g, types.Yellow) {
		for i := range 9 {
			r, c := i/3, i%3
			switch g[r][c] {
			case types.White:
				g[r][c] = types.Yellow
			case types.Yellow:
				g[r][c] = types.White
			default:
				continue
			}
			rules[i] = RuleWhiteYellowSwap
		}
	}

	n = counts(g)
	if n[types.Orange] > 0 && n[types.Red] > 0 && n[types.Orange] > n[types.Red] {
		relabel(&g, types.Orange, types.Red, n[types.Orange]-n[types.Red], onBorder, RuleOrangeToRed, rules)
	}

	n = counts(g)
	switch {
	case n[types.Yellow] > 4 && n[types.Blue] < 2:
		relabel(&g, types.Yellow, types.Blue, n[types.Yellow]-4, onBorder, RuleYellowToBlue, rules)
	case n[types.Blue] > 4 && n[types.Yellow] < 2:
		relabel(&g, types.Blue, types.Yellow, n[types.Blue]-4, onCross, RuleBlueToYellow, rules)
	}
	return g
}

// Cell filters.
func anyCell(int, int) bool { return true }

// onBorder matches corners and edges: every cell except the centre.
func onBorder(r, c int) bool { return r != 1 || c != 1 }

// onCross matches the centre plus the middle row and column.
func onCross(r, c int) bool { return r == 1 || c == 1 }

func relabel(g *[3][3]types.Color, from, to types.Color, limit int, where func(r, c int) bool, rule Rule, rules map[int]Rule) {
	for i := 0; i < 9 && limit > 0; i++ {
		r, c := i/3, i%3
		if g[r][c] != from || !where(r, c) {
			continue
		}
		g[r][c] = to
		rules[i] = rule
		limit--
	}
}

func counts(g [3][3]types.Color) [7]int {
	var n [7]int
	for _, row := range g {
		for _, c := range row {
			if c <= types.Orange {
				n[c]++
			}
		}
	}
	return n
}

func hasOffCenter(g [3][3]types.Color, color types.Color) bool {
	for i := range 9 {
		if i != 4 && g[i/3][i%3] == color {
			return true
		}
	}
	return false
}

// Inconsistencies counts colours that still appear more than six times on
// the face, ignoring single-colour faces. It is a warning signal only and
// never blocks a capture.
func Inconsistencies(cells [3][3]types.Color) int {
	var bad int
	n := counts(cells)
	if n[cells[1][1]%7] == 9 {
		return 0
	}
	for _, c := range types.Colors {
		if n[c] > 6 {
			bad++
		}
	}
	return bad
}
