// File: maze/extract_test.go
package maze

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCoordinates_Order checks start first, air in scan order, end last.
//
// Layer 0:   Layer 1:
//
//	.E        ..
//	#S        #.
func TestCoordinates_Order(t *testing.T) {
	g := MustGrid(Dims{2, 2, 2}, [][]string{{".E", "#S"}, {"..", "#."}})
	list, err := g.Coordinates()
	require.NoError(t, err)

	want := CoordinateList{
		{0, 1, 1}, // S
		{0, 0, 0},
		{1, 0, 0},
		{1, 0, 1},
		{1, 1, 1},
		{0, 0, 1}, // E
	}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("Coordinates() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, Coordinate{0, 1, 1}, list.Start())
	assert.Equal(t, Coordinate{0, 0, 1}, list.End())
}

// TestCoordinates_RoundTrip verifies the list holds every passable cell
// exactly once with the markers at the ends.
func TestCoordinates_RoundTrip(t *testing.T) {
	g := MustGrid(Dims{3, 3, 3}, [][]string{
		{"S.#", "#..", ".#."},
		{"###", "#.#", "..."},
		{".#.", "...", "#.E"},
	})
	list, err := g.Coordinates()
	require.NoError(t, err)

	require.Len(t, list, g.OpenCells())
	assert.Equal(t, Start, g.At(list.Start()))
	assert.Equal(t, End, g.At(list.End()))

	seen := make(map[Coordinate]bool, len(list))
	for i, c := range list {
		require.False(t, seen[c], "duplicate %s", c)
		seen[c] = true
		if i > 0 && i < len(list)-1 {
			assert.Equal(t, Air, g.At(c), "index %d", i)
		}
	}
}

// TestCoordinates_Markers checks missing and repeated markers fail explicitly.
func TestCoordinates_Markers(t *testing.T) {
	cases := []struct {
		name  string
		rows  []string
		kind  CellKind
		count int
	}{
		{"no start", []string{"..E"}, Start, 0},
		{"no end", []string{"S.."}, End, 0},
		{"two starts", []string{"S.S", "..E"}, Start, 2},
		{"two ends", []string{"S.E", "E.."}, End, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := MustGrid(Dims{1, len(tc.rows), 3}, [][]string{tc.rows})
			list, err := g.Coordinates()
			assert.Nil(t, list)
			require.ErrorIs(t, err, ErrInvalidGrid)

			var ige *InvalidGridError
			require.True(t, errors.As(err, &ige))
			assert.Equal(t, tc.kind, ige.Kind)
			assert.Equal(t, tc.count, ige.Count)
		})
	}
}

// TestCoordinates_Deterministic runs the extractor twice.
func TestCoordinates_Deterministic(t *testing.T) {
	g := MustGrid(Dims{1, 3, 3}, [][]string{{"S.#", "#..", ".#E"}})
	a, err := g.Coordinates()
	require.NoError(t, err)
	b, err := g.Coordinates()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
