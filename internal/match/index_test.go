package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexSource(t *testing.T) {
	ctx := context.Background()

	t.Run("empty index returns nothing", func(t *testing.T) {
		src := NewIndexSource(4)
		got, err := src.Candidates(ctx, vec(0))
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("returns nearest neighbors with original vectors", func(t *testing.T) {
		src := NewIndexSource(2)
		src.Rebuild([]Candidate{
			{EmployeeID: "E1", Vector: vec(0.1)},
			{EmployeeID: "E2", Vector: vec(0.9)},
			{EmployeeID: "E3", Vector: vec(0.15)},
		})
		require.Equal(t, 3, src.Len())

		got, err := src.Candidates(ctx, vec(0.12))
		require.NoError(t, err)
		require.Len(t, got, 2)

		ids := []string{got[0].EmployeeID, got[1].EmployeeID}
		assert.ElementsMatch(t, []string{"E1", "E3"}, ids)
		for _, c := range got {
			assert.Len(t, c.Vector, Dimension)
		}
	})

	t.Run("skips malformed vectors on rebuild", func(t *testing.T) {
		src := NewIndexSource(4)
		src.Rebuild([]Candidate{
			{EmployeeID: "bad", Vector: []float64{1, 2}},
			{EmployeeID: "good", Vector: vec(0.5)},
		})
		assert.Equal(t, 1, src.Len())
	})

	t.Run("engine policy is identical over the index", func(t *testing.T) {
		gallery := []Candidate{
			{EmployeeID: "E1", Vector: vec(0.3)},
			{EmployeeID: "E2", Vector: vec(0.5)},
		}
		src := NewIndexSource(8)
		src.Rebuild(gallery)

		engine := NewEngine(0.6)
		indexed, err := engine.FindBestMatch(ctx, vec(0), src)
		require.NoError(t, err)
		linear, err := engine.FindBestMatch(ctx, vec(0), SliceSource(gallery))
		require.NoError(t, err)

		assert.Equal(t, linear, indexed)
	})
}
