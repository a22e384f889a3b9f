package catalog

import (
	"strings"

	"github.com/pawhootz/storefront-backend/internal/models"
)

// Keyword groups checked in priority order; the first group with a hit
// wins. Shampoos and conditioners fold into grooming tools since the shop
// has no standalone bath category.
var categoryKeywords = []struct {
	category models.Category
	keywords []string
}{
	{models.CategoryGrooming, []string{"shampoo", "conditioner", "wash", "soap", "clean", "grooming", "brush", "nail", "trimmer"}},
	{models.CategoryTreats, []string{"treat", "chew", "bone", "snack", "biscuit", "cookie", "food", "kibble", "stick", "bull", "dental", "rawhide"}},
	{models.CategoryBeds, []string{"bed", "blanket", "mat", "pillow", "sleep", "crate", "lounger"}},
	{models.CategoryApparel, []string{"shirt", "bandana", "collar", "leash", "wear", "coat", "apparel", "vest", "harness", "bow", "tie"}},
	{models.CategoryToys, []string{"toy", "ball", "rope", "plush", "squeak", "game", "puzzle", "kong", "zippy", "fun", "tug", "fetch", "disc"}},
}

// Brands whose products would otherwise land in the wrong bucket. Coastal,
// Safe Cat and Max and Molly sell collars and harnesses.
var apparelBrands = []string{"coastal", "safe cat", "max and molly"}

// InferCategory maps a product's name and description to one of the fixed
// storefront categories. It is total: unclassifiable input resolves to
// toys rather than an error.
func InferCategory(name, description string) models.Category {
	text := strings.ToLower(name + " " + description)

	for _, group := range categoryKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(text, kw) {
				return group.category
			}
		}
	}

	for _, brand := range apparelBrands {
		if strings.Contains(text, brand) {
			return models.CategoryApparel
		}
	}

	// Clearly consumable even without a treat keyword
	if strings.Contains(text, "ear") || strings.Contains(text, "bully") {
		return models.CategoryTreats
	}

	return models.CategoryToys
}
