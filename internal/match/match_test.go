package match

import (
	"fmt"
	"testing"

	"matchline/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardLayout stacks L1..L4 at x=20 and R1..R4 at x=300, 80x40 boxes, one
// every 60px starting at y=30. L1's anchor is (100, 50).
func boardLayout(id string) (geometry.Rect, bool) {
	if len(id) != 2 || id[1] < '1' || id[1] > '4' {
		return geometry.Rect{}, false
	}
	y := 30 + 60*float64(id[1]-'1')
	switch id[0] {
	case 'L':
		return geometry.NewRect(20, y, 80, 40), true
	case 'R':
		return geometry.NewRect(300, y, 80, 40), true
	}
	return geometry.Rect{}, false
}

func newBoard(t *testing.T) *Registry {
	t.Helper()
	var specs []ItemSpec
	for i := 1; i <= 4; i++ {
		specs = append(specs, ItemSpec{ID: fmt.Sprintf("L%d", i), Side: SideLeft})
	}
	for i := 1; i <= 4; i++ {
		specs = append(specs, ItemSpec{ID: fmt.Sprintf("R%d", i), Side: SideRight})
	}
	reg, err := NewRegistry(specs)
	require.NoError(t, err)
	reg.Recompute(LayoutFunc(boardLayout))
	return reg
}

// center returns the middle of an item's box.
func center(reg *Registry, id string) geometry.Point2D {
	return reg.Item(id).Bounds.Center()
}

func TestRegistryRejectsBadItems(t *testing.T) {
	_, err := NewRegistry([]ItemSpec{{ID: "L1", Side: SideLeft}, {ID: "L1", Side: SideRight}})
	assert.Error(t, err)

	_, err = NewRegistry([]ItemSpec{{ID: "X", Side: SideUnknown}})
	assert.Error(t, err)

	_, err = NewRegistry([]ItemSpec{{Side: SideLeft}})
	assert.Error(t, err)
}

func TestRecomputeAnchors(t *testing.T) {
	reg := newBoard(t)

	assert.Equal(t, geometry.NewPoint2D(100, 50), reg.Item("L1").Anchor)
	assert.Equal(t, geometry.NewPoint2D(300, 110), reg.Item("R2").Anchor)

	reg.Item("L1").Paired = true
	reg.Item("L1").Active = true
	reg.Recompute(LayoutFunc(func(id string) (geometry.Rect, bool) {
		r, ok := boardLayout(id)
		r.X += 10
		return r, ok
	}))
	assert.Equal(t, geometry.NewPoint2D(110, 50), reg.Item("L1").Anchor)
	assert.False(t, reg.Item("L1").Paired)
	assert.False(t, reg.Item("L1").Active)
}

func TestRecomputeMissingItemCannotBeHit(t *testing.T) {
	reg := newBoard(t)
	reg.Recompute(LayoutFunc(func(id string) (geometry.Rect, bool) {
		if id == "R1" {
			return geometry.Rect{}, false
		}
		return boardLayout(id)
	}))
	assert.Nil(t, reg.HitTest(geometry.NewPoint2D(0, 0)))
	assert.Equal(t, "L1", reg.HitTest(geometry.NewPoint2D(50, 50)).ID)
	assert.Nil(t, reg.HitTest(geometry.NewPoint2D(340, 50)))
}

func TestParseSide(t *testing.T) {
	s, err := ParseSide("Left")
	require.NoError(t, err)
	assert.Equal(t, SideLeft, s)
	s, err = ParseSide("r")
	require.NoError(t, err)
	assert.Equal(t, SideRight, s)
	_, err = ParseSide("middle")
	assert.Error(t, err)
	assert.Equal(t, "L", SideLeft.String())
}
