package catalog

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawhootz/storefront-backend/internal/models"
)

func TestSynthesizeStaysInCategoryRange(t *testing.T) {
	tests := []struct {
		category models.Category
		min, max float64
	}{
		{models.CategoryBeds, 45, 120},
		{models.CategoryTreats, 8, 25},
		{models.CategoryToys, 12, 35},
		{models.CategoryGrooming, 15, 40},
		{models.CategoryApparel, 18, 45},
		{models.Category("unknown"), 10, 30},
	}

	prices := NewPriceSource(rand.New(rand.NewSource(42)))

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				price := prices.Synthesize(tt.category)
				assert.GreaterOrEqual(t, price, tt.min+0.50)
				assert.LessOrEqual(t, price, tt.max+0.99)

				cents := math.Round((price-math.Floor(price))*100) / 100
				assert.Contains(t, []float64{0.50, 0.99}, cents)
			}
		})
	}
}

func TestSynthesizeIsReproducibleWithPinnedSeed(t *testing.T) {
	a := NewPriceSource(rand.New(rand.NewSource(7)))
	b := NewPriceSource(rand.New(rand.NewSource(7)))

	for i := 0; i < 50; i++ {
		require.Equal(t, a.Synthesize(models.CategoryToys), b.Synthesize(models.CategoryToys))
	}
}
