package catalog

import (
	"math/rand"

	"github.com/pawhootz/storefront-backend/internal/models"
)

type priceRange struct {
	min, max int
}

var priceRanges = map[models.Category]priceRange{
	models.CategoryBeds:     {45, 120},
	models.CategoryTreats:   {8, 25},
	models.CategoryToys:     {12, 35},
	models.CategoryGrooming: {15, 40},
	models.CategoryApparel:  {18, 45},
}

var defaultPriceRange = priceRange{10, 30}

// PriceSource synthesizes display prices for products the vendor reports
// with a missing or zero price. The random source is injected so tests can
// pin the output.
type PriceSource struct {
	rnd *rand.Rand
}

func NewPriceSource(rnd *rand.Rand) *PriceSource {
	return &PriceSource{rnd: rnd}
}

// Synthesize returns a plausible price for the category: a whole amount
// drawn uniformly from the category's range with a .50 or .99 suffix
// chosen with equal probability.
func (p *PriceSource) Synthesize(category models.Category) float64 {
	r, ok := priceRanges[category]
	if !ok {
		r = defaultPriceRange
	}

	base := p.rnd.Intn(r.max-r.min+1) + r.min
	cents := 0.50
	if p.rnd.Intn(2) == 0 {
		cents = 0.99
	}
	return float64(base) + cents
}
