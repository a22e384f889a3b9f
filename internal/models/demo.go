package models

// DemoCatalog returns the bundled sample catalog served when live
// inventory is unavailable. Callers get a fresh copy each time so review
// submissions against the demo catalog never leak between loads.
func DemoCatalog() []Product {
	demo := make([]Product, len(demoProducts))
	for i, p := range demoProducts {
		reviews := make([]Review, len(p.Reviews))
		copy(reviews, p.Reviews)
		p.Reviews = reviews
		demo[i] = p
	}
	return demo
}

var demoProducts = []Product{
	{
		ID:          "1",
		Name:        "PawHootz Premium Kibble",
		Description: "High-protein, grain-free formula perfect for active dogs at our resort.",
		Price:       49.99,
		Category:    CategoryTreats,
		Image:       "https://picsum.photos/400/400?random=1",
		Reviews: []Review{
			{ID: "r1", Author: "Sarah M.", Rating: 5, Comment: "My dog loves this food!", Date: "2023-10-15"},
			{ID: "r2", Author: "Mike T.", Rating: 4, Comment: "Great quality but a bit pricey.", Date: "2023-11-02"},
		},
	},
	{
		ID:          "2",
		Name:        "Tough Tug Rope",
		Description: "Durable cotton blend rope for aggressive chewers.",
		Price:       15.50,
		Category:    CategoryToys,
		Image:       "https://picsum.photos/400/400?random=2",
		Reviews: []Review{
			{ID: "r3", Author: "Jenny L.", Rating: 5, Comment: "Finally a toy that lasts longer than 5 minutes.", Date: "2023-12-01"},
		},
	},
	{
		ID:          "3",
		Name:        "Calming Lavender Shampoo",
		Description: "The same shampoo we use in our grooming salon. Soothes itchy skin.",
		Price:       22.00,
		Category:    CategoryGrooming,
		Image:       "https://picsum.photos/400/400?random=3",
		Reviews: []Review{
			{ID: "r4", Author: "Tom H.", Rating: 5, Comment: "Smells amazing and helps with dry skin.", Date: "2024-01-10"},
			{ID: "r5", Author: "Lisa K.", Rating: 5, Comment: "Best shampoo ever!", Date: "2024-01-15"},
		},
	},
	{
		ID:          "4",
		Name:        "Interactive Puzzle Feeder",
		Description: "Keep your pup entertained for hours while stimulating their brain.",
		Price:       29.99,
		Category:    CategoryToys,
		Image:       "https://picsum.photos/400/400?random=4",
		Reviews: []Review{
			{ID: "r6", Author: "Alex R.", Rating: 4, Comment: "Good concept, but my dog figured it out too fast.", Date: "2024-02-20"},
		},
	},
	{
		ID:          "5",
		Name:        "PawHootz Bandana",
		Description: "Stylish branded bandana to show off your resort swag.",
		Price:       12.00,
		Category:    CategoryApparel,
		Image:       "https://picsum.photos/400/400?random=5",
		Reviews:     []Review{},
	},
	{
		ID:          "6",
		Name:        "Orthopedic Memory Foam Bed",
		Description: "Luxurious comfort for senior dogs or after a long day of play.",
		Price:       89.99,
		Category:    CategoryBeds,
		Image:       "https://picsum.photos/400/400?random=6",
		Reviews: []Review{
			{ID: "r7", Author: "Grandma B.", Rating: 5, Comment: "My old Golden loves this bed.", Date: "2023-09-05"},
		},
	},
	{
		ID:          "7",
		Name:        "Organic Sweet Potato Chews",
		Description: "All-natural, single ingredient treats grown in the USA.",
		Price:       18.50,
		Category:    CategoryTreats,
		Image:       "https://picsum.photos/400/400?random=7",
		Reviews: []Review{
			{ID: "r8", Author: "HealthNut99", Rating: 3, Comment: "My dog didn't like the texture.", Date: "2023-10-30"},
		},
	},
	{
		ID:          "8",
		Name:        "Slicker Brush",
		Description: "Professional grade brush to remove mats and tangles.",
		Price:       19.99,
		Category:    CategoryGrooming,
		Image:       "https://picsum.photos/400/400?random=8",
		Reviews: []Review{
			{ID: "r9", Author: "GroomerPro", Rating: 5, Comment: "Essential tool for doodles.", Date: "2024-01-05"},
		},
	},
	{
		ID:          "9",
		Name:        "Cozy Fleece Blanket",
		Description: "Soft, washable fleece blanket for crates or couches.",
		Price:       24.99,
		Category:    CategoryBeds,
		Image:       "https://picsum.photos/400/400?random=9",
		Reviews:     []Review{},
	},
	{
		ID:          "10",
		Name:        "Raincoat with Reflective Stripe",
		Description: "Keep your pooch dry and visible during evening walks.",
		Price:       34.50,
		Category:    CategoryApparel,
		Image:       "https://picsum.photos/400/400?random=10",
		Reviews: []Review{
			{ID: "r10", Author: "Walker", Rating: 4, Comment: "Fits well but hood is a bit big.", Date: "2023-11-15"},
		},
	},
}
