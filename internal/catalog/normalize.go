package catalog

import (
	"strings"

	"github.com/google/uuid"

	"github.com/pawhootz/storefront-backend/internal/models"
)

// VendorProduct is a product record as returned by the vendor API.
type VendorProduct struct {
	ID          string          `json:"_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Medias      []VendorMedia   `json:"medias"`
	Variants    []VendorVariant `json:"variants"`
	ProductType string          `json:"productType"`
}

type VendorMedia struct {
	ID   string `json:"_id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type VendorVariant struct {
	ID    string  `json:"_id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// SyntheticDescription is used for products reconstructed from the media
// library alone.
const SyntheticDescription = "Available at PawHootz Pet Resort."

// Normalizer converts vendor product records into the internal model,
// repairing missing prices, categories and images along the way.
type Normalizer struct {
	prices *PriceSource
}

func NewNormalizer(prices *PriceSource) *Normalizer {
	return &Normalizer{prices: prices}
}

// Normalize builds an internal product from a vendor record. A missing or
// zero variant price is replaced with a synthesized one, and a record
// without a usable image gets the best media-library match, if any.
func (n *Normalizer) Normalize(vp VendorProduct, files []models.MediaFile) models.Product {
	category := InferCategory(vp.Name, vp.Description)

	var price float64
	if len(vp.Variants) > 0 {
		price = vp.Variants[0].Price
	}
	if price <= 0 {
		price = n.prices.Synthesize(category)
	}

	image := vp.Image
	if len(vp.Medias) > 0 && vp.Medias[0].URL != "" {
		image = vp.Medias[0].URL
	}
	if image == "" || strings.Contains(image, "placeholder") {
		image = FindBestImage(vp.Name, files)
	}
	if strings.Contains(image, "placeholder") {
		image = ""
	}

	return models.Product{
		ID:          vp.ID,
		Name:        vp.Name,
		Description: vp.Description,
		Price:       price,
		Category:    category,
		Image:       image,
		Reviews:     []models.Review{},
	}
}

var nameSeparators = strings.NewReplacer("-", " ", "_", " ")

// FromMediaFile fabricates a catalog product from a media-library file,
// used when the vendor product API is unreachable or its payload is
// malformed. A file without a stable identifier gets a random one.
func (n *Normalizer) FromMediaFile(f models.MediaFile) models.Product {
	name := f.Name
	if i := strings.LastIndex(name, "."); i > 0 {
		name = name[:i]
	}
	name = nameSeparators.Replace(name)

	category := InferCategory(name, "")

	id := f.ID
	if id == "" {
		id = f.AltID
	}
	if id == "" {
		id = uuid.NewString()
	}

	return models.Product{
		ID:          id,
		Name:        name,
		Description: SyntheticDescription,
		Price:       n.prices.Synthesize(category),
		Category:    category,
		Image:       f.URL,
		Reviews:     []models.Review{},
	}
}
