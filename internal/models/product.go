package models

// Category identifies one of the fixed storefront categories.
type Category string

const (
	CategoryTreats   Category = "treats-chews"
	CategoryToys     Category = "toys"
	CategoryBeds     Category = "beds-blankets"
	CategoryGrooming Category = "grooming-tools"
	CategoryApparel  Category = "apparel"
)

// AllCategories lists every category in storefront display order.
var AllCategories = []Category{
	CategoryTreats,
	CategoryToys,
	CategoryBeds,
	CategoryGrooming,
	CategoryApparel,
}

// CategoryLabels maps category keys to their display labels.
var CategoryLabels = map[Category]string{
	CategoryTreats:   "Treats & Chews",
	CategoryToys:     "Toys",
	CategoryBeds:     "Beds & Blankets",
	CategoryGrooming: "Grooming Tools",
	CategoryApparel:  "Apparel",
}

// Review is a shopper-submitted product review. Reviews are append-only
// and live only as long as the catalog they belong to.
type Review struct {
	ID      string `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Product is the storefront's internal product representation. Price is
// always positive and Category is always one of the fixed set; the
// normalizer repairs vendor records that violate either. An empty Image
// means "no image available" and the UI shows a branded placeholder.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Image       string   `json:"image"`
	Reviews     []Review `json:"reviews"`
}

// CartItem is a product in the cart with a quantity of at least one.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// User is the signed-in shopper. Login is simulated, so this carries no
// credentials.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// MediaFile is a file entry from the vendor's media library.
type MediaFile struct {
	ID    string `json:"_id"`
	AltID string `json:"altId,omitempty"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"`
	IsDir bool   `json:"isDir,omitempty"`
}
