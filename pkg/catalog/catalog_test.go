package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutmix/nutmix/pkg/errors"
)

func TestIngredientNormalize(t *testing.T) {
	tests := []struct {
		name     string
		raw      Ingredient
		want     Density
		wantCode errors.ErrorCode
	}{
		{
			name: "valid ingredient",
			raw:  Ingredient{Name: "oats", G: 1000, Kcal: 3700, Carb: 589, Fat: 70, Protein: 137},
			want: Density{Carb: 0.589, Fat: 0.07, Protein: 0.137, KcalPerGram: 3.7},
		},
		{
			name: "macros need not sum to total mass",
			raw:  Ingredient{Name: "banana", G: 1000, Kcal: 890, Carb: 230, Fat: 3, Protein: 12},
			want: Density{Carb: 0.23, Fat: 0.003, Protein: 0.012, KcalPerGram: 0.89},
		},
		{
			name: "zero macro ingredient",
			raw:  Ingredient{Name: "water", G: 500},
			want: Density{},
		},
		{
			name:     "zero total mass",
			raw:      Ingredient{Name: "ghost", G: 0, Kcal: 100},
			wantCode: errors.ErrCodeDivision,
		},
		{
			name:     "negative total mass",
			raw:      Ingredient{Name: "ghost", G: -10, Kcal: 100},
			wantCode: errors.ErrCodeDivision,
		},
		{
			name:     "negative macro",
			raw:      Ingredient{Name: "weird", G: 100, Kcal: 50, Carb: -1},
			wantCode: errors.ErrCodeInvalidRequest,
		},
		{
			name:     "macro exceeds total mass",
			raw:      Ingredient{Name: "weird", G: 100, Kcal: 900, Fat: 101},
			wantCode: errors.ErrCodeInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.raw.Normalize()
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.CodeOf(err))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Carb, got.Carb, 1e-9)
			assert.InDelta(t, tt.want.Fat, got.Fat, 1e-9)
			assert.InDelta(t, tt.want.Protein, got.Protein, 1e-9)
			assert.InDelta(t, tt.want.KcalPerGram, got.KcalPerGram, 1e-9)
		})
	}
}

func TestIngredientNormalizeFractionsInRange(t *testing.T) {
	raws := []Ingredient{
		{Name: "quark40", G: 1000, Kcal: 1390, Carb: 32, Fat: 100, Protein: 90},
		{Name: "seeds", G: 1000, Kcal: 5850, Carb: 117, Fat: 514, Protein: 209},
		{Name: "all-carb", G: 100, Kcal: 400, Carb: 100},
	}

	for _, raw := range raws {
		d, err := raw.Normalize()
		require.NoError(t, err, raw.Name)
		for _, frac := range []float64{d.Carb, d.Fat, d.Protein} {
			assert.GreaterOrEqual(t, frac, 0.0, raw.Name)
			assert.LessOrEqual(t, frac, 1.0, raw.Name)
		}
	}
}

func TestCatalogAdd(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(Ingredient{Name: "banana", G: 1000, Kcal: 890, Carb: 230, Fat: 3, Protein: 12}))
	require.NoError(t, c.Add(Ingredient{Name: "oats", G: 1000, Kcal: 3700, Carb: 589, Fat: 70, Protein: 137}))

	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains("banana"))
	assert.False(t, c.Contains("kale"))

	d, ok := c.Density("oats")
	require.True(t, ok)
	assert.InDelta(t, 3.7, d.KcalPerGram, 1e-9)

	raw, ok := c.Raw("banana")
	require.True(t, ok)
	assert.InDelta(t, 890.0, raw.Kcal, 1e-9)
}

func TestCatalogAddRejectsDuplicates(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(Ingredient{Name: "banana", G: 100, Kcal: 89}))

	err := c.Add(Ingredient{Name: "banana", G: 200, Kcal: 178})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
	assert.Equal(t, 1, c.Len())
}

func TestCatalogAddRejectsEmptyName(t *testing.T) {
	c := New()
	err := c.Add(Ingredient{G: 100, Kcal: 89})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRequest, errors.CodeOf(err))
}

func TestCatalogAddRejectsInvalidIngredient(t *testing.T) {
	c := New()
	err := c.Add(Ingredient{Name: "ghost", G: 0})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeDivision, errors.CodeOf(err))
	assert.False(t, c.Contains("ghost"))
}

func TestCatalogNamesPreserveInsertionOrder(t *testing.T) {
	c := New()
	names := []string{"quark40", "banana", "seeds", "oats"}
	for _, n := range names {
		require.NoError(t, c.Add(Ingredient{Name: n, G: 100, Kcal: 100, Carb: 10}))
	}
	assert.Equal(t, names, c.Names())
}
