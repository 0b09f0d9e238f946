package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		name        string
		rows, cols  int
		expectError bool
	}{
		{name: "2x2", rows: 2, cols: 2},
		{name: "1x3", rows: 1, cols: 3},
		{name: "no rows", rows: 0, cols: 3, expectError: true},
		{name: "no cols", rows: 4, cols: 0, expectError: true},
	}
	for _, tc := range testCases {
		_, err := New(tc.rows, tc.cols)
		if tc.expectError {
			assert.ErrorIs(t, err, ErrEmptyGrid, tc.name)
			continue
		}
		assert.NoError(t, err, tc.name)
	}
}

func TestGrid_SiteCellBijection(t *testing.T) {
	g, err := New(3, 4)
	assert.NoError(t, err)
	seen := map[Site]bool{}
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			cell := Cell{Row: row, Col: col}
			site := g.SiteOf(cell)
			assert.False(t, seen[site], "site %d reused", site)
			seen[site] = true
			back, err := g.CellOf(site)
			assert.NoError(t, err)
			assert.Equal(t, cell, back)
		}
	}
	assert.Len(t, seen, g.Sites())

	_, err = g.CellOf(Site(g.Sites()))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = g.CellOf(Site(-1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestGrid_Lines(t *testing.T) {
	g, _ := New(3, 3)
	assert.Equal(t, 5, g.Lines())
	assert.Equal(t, 0, g.LineOf(Cell{Row: 2, Col: 0}))
	assert.Equal(t, 2, g.LineOf(Cell{Row: 0, Col: 0}))
	assert.Equal(t, 4, g.LineOf(Cell{Row: 0, Col: 2}))
	// Cells on the same diagonal share a line.
	assert.Equal(t, g.LineOf(Cell{Row: 1, Col: 1}), g.LineOf(Cell{Row: 0, Col: 0}))
}

func TestGrid_Contains(t *testing.T) {
	g, _ := New(2, 2)
	assert.True(t, g.Contains(Cell{Row: 1, Col: 1}))
	assert.False(t, g.Contains(Cell{Row: 2, Col: 0}))
	assert.False(t, g.Contains(Cell{Row: 0, Col: -1}))
}
