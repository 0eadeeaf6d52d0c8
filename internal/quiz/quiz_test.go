package quiz

import (
	"os"
	"path/filepath"
	"testing"

	"matchline/internal/match"
	"matchline/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlQuiz = `title: Capitals
width: 300
height: 200
left:
  - {id: L1, label: France}
  - {id: L2, label: Japan}
right:
  - {id: R1, label: Tokyo}
  - {id: R2, label: Paris, box: {x: 200, y: 150, width: 80, height: 30}}
answers:
  - [L1, R2]
  - [L2, R1]
`

const tomlQuiz = `title = "Capitals"
width = 300
height = 200
answers = [["L1", "R2"], ["L2", "R1"]]

[[left]]
id = "L1"
label = "France"

[[left]]
id = "L2"
label = "Japan"

[[right]]
id = "R1"
label = "Tokyo"

[[right]]
id = "R2"
label = "Paris"
box = { x = 200, y = 150, width = 80, height = 30 }
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFormats(t *testing.T) {
	for name, content := range map[string]string{
		"capitals.yaml": yamlQuiz,
		"capitals.toml": tomlQuiz,
	} {
		t.Run(name, func(t *testing.T) {
			q, err := Load(writeFile(t, name, content))
			require.NoError(t, err)
			assert.Equal(t, "Capitals", q.Title)
			assert.Equal(t, [][2]string{{"L1", "R2"}, {"L2", "R1"}}, q.Answers)
			require.NotNil(t, q.Right[1].Box)
			assert.Equal(t, geometry.NewRect(200, 150, 80, 30), *q.Right[1].Box)
			assert.Equal(t, "Paris", q.Label("R2"))
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load(writeFile(t, "quiz.json", "{}"))
	assert.Error(t, err)
}

func TestLoadOrDefault(t *testing.T) {
	q, err := LoadOrDefault("")
	require.NoError(t, err)
	assert.Equal(t, Default(), q)
	require.NoError(t, q.Validate())
}

func TestValidateRejects(t *testing.T) {
	cases := map[string]func(q *Quiz){
		"duplicate id":        func(q *Quiz) { q.Right[0].ID = "L1" },
		"wrong side answer":   func(q *Quiz) { q.Answers[0] = [2]string{"R1", "L1"} },
		"unknown answer":      func(q *Quiz) { q.Answers[0][1] = "R9" },
		"duplicate reference": func(q *Quiz) { q.Answers = append(q.Answers, [2]string{"L1", "R1"}) },
		"uncovered left":      func(q *Quiz) { q.Answers = q.Answers[:3] },
		"shared right answer": func(q *Quiz) { q.Answers[1] = [2]string{"L2", "R4"} },
		"empty list":          func(q *Quiz) { q.Right = nil },
		"no surface":          func(q *Quiz) { q.Width = 0 },
		"pinned over column": func(q *Quiz) {
			q.Left[0].Box = &geometry.Rect{X: 300, Y: 10, Width: 50, Height: 30}
		},
		"overlapping boxes": func(q *Quiz) {
			q.Left[0].Box = &geometry.Rect{X: 0, Y: 0, Width: 50, Height: 50}
			q.Right[0].Box = &geometry.Rect{X: 40, Y: 40, Width: 50, Height: 50}
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			q := Default()
			mutate(q)
			assert.ErrorIs(t, q.Validate(), ErrInvalid)
		})
	}
}

func TestItemsAndReference(t *testing.T) {
	q := Default()
	items := q.Items()
	require.Len(t, items, 8)
	assert.Equal(t, match.ItemSpec{ID: "L1", Side: match.SideLeft, Label: "Go"}, items[0])
	assert.Equal(t, match.SideRight, items[4].Side)

	ref, err := q.Reference()
	require.NoError(t, err)
	right, ok := ref.Expected("L2")
	assert.True(t, ok)
	assert.Equal(t, "R3", right)
}

func TestColumnLayout(t *testing.T) {
	q := Default()
	l := NewColumnLayout(q, q.Size())

	l1, ok := l.Bounds("L1")
	require.True(t, ok)
	assert.Equal(t, geometry.NewRect(20, 9.375, 120, 43.75), l1)

	r4, ok := l.Bounds("R4")
	require.True(t, ok)
	assert.InDelta(t, 260, r4.X, 1e-9)
	assert.InDelta(t, 187.5+9.375, r4.Y, 1e-9)

	_, ok = l.Bounds("X1")
	assert.False(t, ok)
}

func TestColumnLayoutScalesPinnedBoxes(t *testing.T) {
	q := Default()
	q.Right[0].Box = &geometry.Rect{X: 300, Y: 200, Width: 80, Height: 40}
	l := NewColumnLayout(q, geometry.NewSize(800, 500))
	r1, ok := l.Bounds("R1")
	require.True(t, ok)
	assert.Equal(t, geometry.NewRect(600, 400, 160, 80), r1)
}

func TestColumnLayoutDrivesRegistry(t *testing.T) {
	q := Default()
	reg, err := match.NewRegistry(q.Items())
	require.NoError(t, err)
	reg.Recompute(NewColumnLayout(q, q.Size()))

	assert.Equal(t, geometry.NewPoint2D(140, 31.25), reg.Item("L1").Anchor)
	assert.Equal(t, "R1", reg.HitTest(geometry.NewPoint2D(300, 30)).ID)
}

func TestColumnLayoutZeroSurface(t *testing.T) {
	_, ok := NewColumnLayout(Default(), geometry.Size{}).Bounds("L1")
	assert.False(t, ok)
}
