// Package render draws TreasureHunt environments, the values an agent
// has learned and the learning curves of experiments
package render

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/samuelfneumann/treasurehunt/environment/treasurehunt"
)

// Console renders a TreasureHunt as coloured text for terminals. With
// colours disabled its rendering is identical to the environment's own.
type Console struct {
	env *treasurehunt.TreasureHunt
	au  aurora.Aurora
}

// NewConsole returns a new Console rendering env
func NewConsole(env *treasurehunt.TreasureHunt, colors bool) *Console {
	return &Console{env: env, au: aurora.NewAurora(colors)}
}

// Render renders the grid followed by the legend
func (c *Console) Render() string {
	cells := c.env.Cells()
	lines := make([]string, len(cells))
	for y, row := range cells {
		glyphs := make([]string, len(row))
		for x, g := range row {
			glyphs[x] = c.colour(g)
		}
		lines[y] = strings.Join(glyphs, " ")
	}
	return strings.Join(lines, "\n") + "\n" + treasurehunt.Legend
}

func (c *Console) colour(g rune) string {
	s := string(g)
	switch g {
	case treasurehunt.WallGlyph:
		return c.au.BrightBlack(s).String()
	case treasurehunt.TrapGlyph:
		return c.au.Red(s).String()
	case treasurehunt.GoalGlyph:
		return c.au.Green(s).String()
	case treasurehunt.TreasureGlyph:
		return c.au.Yellow(s).String()
	case treasurehunt.StartGlyph:
		return c.au.Blue(s).String()
	case treasurehunt.AgentGlyph:
		return c.au.Bold(c.au.White(s)).String()
	case treasurehunt.CarryingGlyph:
		return c.au.Bold(c.au.Yellow(s)).String()
	default:
		return s
	}
}
