package treasurehunt

import (
	"strings"
)

// Glyphs used when rendering a TreasureHunt as text
const (
	EmptyGlyph    = '.'
	WallGlyph     = '#'
	TrapGlyph     = 'X'
	GoalGlyph     = 'G'
	TreasureGlyph = 'T'
	StartGlyph    = 'S'
	AgentGlyph    = 'P'
	CarryingGlyph = '*'
)

// Legend explains the glyphs of a rendered TreasureHunt
const Legend = "Legend: P=player, *=player+treasure, T=treasure, G=goal, " +
	"#=wall, X=trap, S=start"

// Cells returns the glyph of every cell, indexed by [y][x]. Later layers
// cover earlier ones: walls, traps, goal, treasure (until picked up),
// start (only over empty cells) and finally the agent.
func (t *TreasureHunt) Cells() [][]rune {
	grid := make([][]rune, t.height)
	for y := range grid {
		grid[y] = make([]rune, t.width)
		for x := range grid[y] {
			grid[y][x] = EmptyGlyph
		}
	}

	for _, w := range t.config.Walls {
		grid[w.Y][w.X] = WallGlyph
	}
	for _, trap := range t.config.Traps {
		grid[trap.Y][trap.X] = TrapGlyph
	}
	grid[t.config.Goal.Y][t.config.Goal.X] = GoalGlyph
	if !t.carrying {
		grid[t.config.Treasure.Y][t.config.Treasure.X] = TreasureGlyph
	}
	if start := t.config.Start; grid[start.Y][start.X] == EmptyGlyph {
		grid[start.Y][start.X] = StartGlyph
	}
	if t.carrying {
		grid[t.position.Y][t.position.X] = CarryingGlyph
	} else {
		grid[t.position.Y][t.position.X] = AgentGlyph
	}

	return grid
}

// Grid renders the grid as text, one row per line with cells separated
// by a single space
func (t *TreasureHunt) Grid() string {
	cells := t.Cells()
	lines := make([]string, len(cells))
	for y, row := range cells {
		glyphs := make([]string, len(row))
		for x, g := range row {
			glyphs[x] = string(g)
		}
		lines[y] = strings.Join(glyphs, " ")
	}
	return strings.Join(lines, "\n")
}

// Render renders the grid followed by the Legend
func (t *TreasureHunt) Render() string {
	return t.Grid() + "\n" + Legend
}
