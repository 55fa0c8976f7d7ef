package render

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/treasurehunt/environment/treasurehunt"
)

// centre returns the colour at the centre of cell (x, y)
func centre(t *testing.T, env *treasurehunt.TreasureHunt, values mat.Matrix,
	x, y int) color.RGBA {
	t.Helper()
	im, err := Snapshot(env, values, DefaultCellSize)
	if err != nil {
		t.Fatal(err)
	}
	c := im.At(x*DefaultCellSize+DefaultCellSize/2,
		y*DefaultCellSize+DefaultCellSize/2)
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func TestSnapshot(t *testing.T) {
	env := newEnv(t)

	im, err := Snapshot(env, nil, DefaultCellSize)
	if err != nil {
		t.Fatal(err)
	}
	w, h := env.Dims()
	bounds := im.Bounds()
	if bounds.Dx() != w*DefaultCellSize ||
		bounds.Dy() != h*DefaultCellSize+hudHeight {
		t.Errorf("unexpected image bounds %v", bounds)
	}

	tests := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"Wall", 1, 1, wallColour},
		{"Trap", 2, 1, trapColour},
		{"Goal", 4, 0, goalColour},
		{"Treasure", 2, 2, treasureColour},
		{"Agent", 0, 4, agentColour},
		{"Empty", 0, 0, gridColour},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if have := centre(t, env, nil, test.x, test.y); have != test.want {
				t.Errorf("want %v, have %v", test.want, have)
			}
		})
	}
}

func TestSnapshotHeatmap(t *testing.T) {
	env := newEnv(t)
	values := mat.NewDense(env.NumStates(), treasurehunt.NumActions, nil)

	// Cell (0, 0) has the highest greedy value without the treasure and
	// (4, 4) the lowest
	hi, _ := env.Encode(treasurehunt.Position{X: 0, Y: 0}, false)
	lo, _ := env.Encode(treasurehunt.Position{X: 4, Y: 4}, false)
	values.Set(hi, 2, 1)
	values.Set(lo, 0, -1)

	if have := centre(t, env, values, 0, 0); have != heatColour {
		t.Errorf("want highest value shaded %v, have %v", heatColour, have)
	}
	if have := centre(t, env, values, 4, 4); have != gridColour {
		t.Errorf("want lowest value shaded %v, have %v", gridColour, have)
	}

	wrong := mat.NewDense(3, treasurehunt.NumActions, nil)
	if _, err := Snapshot(env, wrong, DefaultCellSize); err == nil {
		t.Error("want error for values of the wrong size")
	}
}

func TestSaveSnapshot(t *testing.T) {
	env := newEnv(t)
	filename := filepath.Join(t.TempDir(), "snapshot.png")

	if err := SaveSnapshot(filename, env, nil, DefaultCellSize); err != nil {
		t.Fatal(err)
	}
	if info, err := os.Stat(filename); err != nil || info.Size() == 0 {
		t.Errorf("snapshot not written: %v", err)
	}

	if err := SaveSnapshot(filename, env, nil, 1); err == nil {
		t.Error("want error for tiny cells")
	}
}
