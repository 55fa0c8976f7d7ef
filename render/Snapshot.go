package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/treasurehunt/environment/treasurehunt"
	"github.com/samuelfneumann/treasurehunt/utils/floatutils"
)

const (
	margin    = 2.0
	radius    = 6.0
	hudHeight = 24
)

// DefaultCellSize is the default side length of a cell in pixels
const DefaultCellSize = 64

// Palette
var (
	background      = color.RGBA{30, 30, 30, 255}
	gridColour      = color.RGBA{200, 200, 200, 255}
	wallColour      = color.RGBA{80, 80, 80, 255}
	trapColour      = color.RGBA{180, 60, 60, 255}
	treasureColour  = color.RGBA{230, 200, 40, 255}
	goalColour      = color.RGBA{70, 160, 90, 255}
	startColour     = color.RGBA{90, 140, 220, 255}
	agentColour     = color.RGBA{240, 240, 240, 255}
	carryingColour  = color.RGBA{255, 170, 60, 255}
	textColour      = color.RGBA{230, 230, 230, 255}
	heatColour      = color.RGBA{110, 190, 130, 255}
	glyphTextColour = color.Black
)

// Snapshot draws the current state of env. If values is not nil, each
// open cell is shaded by its greedy value max_a Q(s, a) given whether
// the agent currently carries the treasure, with one row of values per
// state of env.
func Snapshot(env *treasurehunt.TreasureHunt, values mat.Matrix,
	cellSize int) (image.Image, error) {
	if cellSize < 2*margin+1 {
		return nil, fmt.Errorf("snapshot: cell size %d too small", cellSize)
	}

	var heat [][]float64
	if values != nil {
		var err error
		if heat, err = greedyValues(env, values); err != nil {
			return nil, fmt.Errorf("snapshot: %w", err)
		}
	}

	w, h := env.Dims()
	dc := gg.NewContext(w*cellSize, h*cellSize+hudHeight)
	dc.SetColor(background)
	dc.Clear()

	for y, row := range env.Cells() {
		for x, g := range row {
			fill := gridColour
			switch g {
			case treasurehunt.WallGlyph:
				fill = wallColour
			case treasurehunt.TrapGlyph:
				fill = trapColour
			case treasurehunt.GoalGlyph:
				fill = goalColour
			case treasurehunt.TreasureGlyph:
				fill = treasureColour
			case treasurehunt.StartGlyph:
				fill = startColour
			case treasurehunt.AgentGlyph:
				fill = agentColour
			case treasurehunt.CarryingGlyph:
				fill = carryingColour
			case treasurehunt.EmptyGlyph:
				if heat != nil {
					fill = lerp(gridColour, heatColour, heat[y][x])
				}
			}
			drawCell(dc, x, y, cellSize, fill, g)
		}
	}

	dc.SetColor(textColour)
	hud := fmt.Sprintf("steps=%d  carrying=%v", env.Steps(), env.Carrying())
	dc.DrawString(hud, 8, float64(h*cellSize+hudHeight-8))

	return dc.Image(), nil
}

// SaveSnapshot draws the current state of env as in Snapshot and saves
// it as a PNG image
func SaveSnapshot(filename string, env *treasurehunt.TreasureHunt,
	values mat.Matrix, cellSize int) error {
	im, err := Snapshot(env, values, cellSize)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(filename, im); err != nil {
		return fmt.Errorf("saveSnapshot: %w", err)
	}
	return nil
}

func drawCell(dc *gg.Context, x, y, size int, fill color.Color, g rune) {
	px := float64(x*size) + margin
	py := float64(y*size) + margin
	side := float64(size) - 2*margin

	dc.DrawRoundedRectangle(px, py, side, side, radius)
	dc.SetColor(fill)
	dc.Fill()

	if g != treasurehunt.EmptyGlyph {
		dc.SetColor(glyphTextColour)
		dc.DrawString(string(g), px+6, py+16)
	}
}

// greedyValues returns the greedy value of every cell normalised to
// [0, 1], indexed by [y][x]. Walls are left at 0.
func greedyValues(env *treasurehunt.TreasureHunt,
	values mat.Matrix) ([][]float64, error) {
	rows, _ := values.Dims()
	if rows != env.NumStates() {
		return nil, fmt.Errorf("have values for %d states, environment "+
			"has %d", rows, env.NumStates())
	}

	w, h := env.Dims()
	heat := make([][]float64, h)
	var open []float64
	for y := range heat {
		heat[y] = make([]float64, w)
		for x := range heat[y] {
			p := treasurehunt.Position{X: x, Y: y}
			if env.IsWall(p) {
				continue
			}
			s, err := env.Encode(p, env.Carrying())
			if err != nil {
				return nil, err
			}
			heat[y][x] = floats.Max(mat.Row(nil, s, values))
			open = append(open, heat[y][x])
		}
	}
	if len(open) == 0 {
		return heat, nil
	}

	lo, hi := floats.Min(open), floats.Max(open)
	for y := range heat {
		for x := range heat[y] {
			if env.IsWall(treasurehunt.Position{X: x, Y: y}) || hi == lo {
				heat[y][x] = 0
				continue
			}
			heat[y][x] = (heat[y][x] - lo) / (hi - lo)
		}
	}
	return heat, nil
}

// lerp linearly interpolates between colours a and b
func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = floatutils.Clip(t, 0, 1)
	mix := func(u, v uint8) uint8 {
		return uint8(float64(u) + t*(float64(v)-float64(u)) + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
