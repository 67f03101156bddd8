package constraint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutmix/nutmix/pkg/catalog"
	"github.com/nutmix/nutmix/pkg/errors"
	"github.com/nutmix/nutmix/pkg/target"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c := catalog.New()
	for _, raw := range []catalog.Ingredient{
		{Name: "quark40", G: 1000, Kcal: 1390, Carb: 32, Fat: 100, Protein: 90},
		{Name: "banana", G: 1000, Kcal: 890, Carb: 230, Fat: 3, Protein: 12},
		{Name: "seeds", G: 1000, Kcal: 5850, Carb: 117, Fat: 514, Protein: 209},
	} {
		require.NoError(t, c.Add(raw))
	}
	return c
}

func TestNewSetDefaults(t *testing.T) {
	cat := testCatalog(t)
	set, err := NewSet(&target.Target{}, cat)
	require.NoError(t, err)

	_, pinned := set.Exact("banana")
	assert.False(t, pinned)
	assert.False(t, set.Pinned("banana"))
	assert.Zero(t, set.LowerBound("banana"))
	assert.True(t, math.IsInf(set.UpperBound("banana"), 1))
	assert.Zero(t, set.Initial("banana"))
}

func TestNewSetBounds(t *testing.T) {
	cat := testCatalog(t)
	tgt := &target.Target{
		ConstraintExact:   []target.Constraint{{Name: "quark40", G: 250}},
		ConstraintAtLeast: []target.Constraint{{Name: "banana", G: 378}},
		ConstraintAtMost:  []target.Constraint{{Name: "seeds", G: 75}},
	}

	set, err := NewSet(tgt, cat)
	require.NoError(t, err)

	exact, ok := set.Exact("quark40")
	require.True(t, ok)
	assert.InDelta(t, 250.0, exact, 1e-9)
	assert.True(t, set.Pinned("quark40"))

	assert.InDelta(t, 378.0, set.LowerBound("banana"), 1e-9)
	assert.InDelta(t, 75.0, set.UpperBound("seeds"), 1e-9)

	// initial allocation: exact wins, then lower bound, then zero
	assert.InDelta(t, 250.0, set.Initial("quark40"), 1e-9)
	assert.InDelta(t, 378.0, set.Initial("banana"), 1e-9)
	assert.Zero(t, set.Initial("seeds"))
}

func TestNewSetExactWithinBounds(t *testing.T) {
	cat := testCatalog(t)
	tgt := &target.Target{
		ConstraintExact:   []target.Constraint{{Name: "banana", G: 100}},
		ConstraintAtLeast: []target.Constraint{{Name: "banana", G: 50}},
		ConstraintAtMost:  []target.Constraint{{Name: "banana", G: 150}},
	}

	_, err := NewSet(tgt, cat)
	assert.NoError(t, err)
}

func TestNewSetConflicts(t *testing.T) {
	tests := []struct {
		name string
		tgt  target.Target
	}{
		{
			name: "exact above at_most",
			tgt: target.Target{
				ConstraintExact:  []target.Constraint{{Name: "banana", G: 100}},
				ConstraintAtMost: []target.Constraint{{Name: "banana", G: 50}},
			},
		},
		{
			name: "exact below at_least",
			tgt: target.Target{
				ConstraintExact:   []target.Constraint{{Name: "banana", G: 100}},
				ConstraintAtLeast: []target.Constraint{{Name: "banana", G: 200}},
			},
		},
		{
			name: "at_least above at_most",
			tgt: target.Target{
				ConstraintAtLeast: []target.Constraint{{Name: "seeds", G: 80}},
				ConstraintAtMost:  []target.Constraint{{Name: "seeds", G: 75}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSet(&tt.tgt, testCatalog(t))
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeConflictingConstraint, errors.CodeOf(err))
		})
	}
}

func TestNewSetUnknownIngredient(t *testing.T) {
	tgt := &target.Target{
		ConstraintAtLeast: []target.Constraint{{Name: "kale", G: 100}},
	}

	_, err := NewSet(tgt, testCatalog(t))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeUnknownIngredient, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "missing from catalog")
}

func TestNewSetNegativeGrams(t *testing.T) {
	tgt := &target.Target{
		ConstraintAtMost: []target.Constraint{{Name: "banana", G: -5}},
	}

	_, err := NewSet(tgt, testCatalog(t))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}
