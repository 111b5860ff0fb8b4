// Package fixtures holds the seed data the mock commerce API serves:
// a small catalog, a user directory and per-user carts. Products are
// wire-shaped, so prices are plain JSON numbers.
package fixtures

// Rating mirrors the catalog wire shape.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product mirrors the catalog wire shape.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      Rating  `json:"rating"`
}

var seedProducts = []Product{
	{ID: 1, Title: "Fjallraven Foldsack No. 1 Backpack", Price: 109.95, Description: "Your perfect pack for everyday use and walks in the forest.", Category: "men's clothing", Image: "https://img.example.com/backpack.jpg", Rating: Rating{Rate: 3.9, Count: 120}},
	{ID: 2, Title: "Mens Casual Premium Slim Fit T-Shirt", Price: 22.3, Description: "Slim-fitting style, contrast raglan long sleeve.", Category: "men's clothing", Image: "https://img.example.com/tshirt.jpg", Rating: Rating{Rate: 4.1, Count: 259}},
	{ID: 3, Title: "Mens Cotton Jacket", Price: 55.99, Description: "Great outerwear jacket for spring, autumn and winter.", Category: "men's clothing", Image: "https://img.example.com/jacket.jpg", Rating: Rating{Rate: 4.7, Count: 500}},
	{ID: 4, Title: "Womens Removable Hooded Faux Leather Jacket", Price: 29.95, Description: "Faux leather material with detachable hood.", Category: "women's clothing", Image: "https://img.example.com/leather.jpg", Rating: Rating{Rate: 2.9, Count: 340}},
	{ID: 5, Title: "Opna Womens Short Sleeve Moisture Shirt", Price: 7.95, Description: "Lightweight and breathable moisture-wicking fabric.", Category: "women's clothing", Image: "https://img.example.com/opna.jpg", Rating: Rating{Rate: 4.5, Count: 146}},
	{ID: 6, Title: "Solid Gold Petite Micropave Bracelet", Price: 168.0, Description: "Satisfaction guaranteed, designed and sold by a family business.", Category: "jewelery", Image: "https://img.example.com/bracelet.jpg", Rating: Rating{Rate: 3.9, Count: 70}},
	{ID: 7, Title: "White Gold Plated Princess Ring", Price: 9.99, Description: "Classic created wedding engagement solitaire ring.", Category: "jewelery", Image: "https://img.example.com/ring.jpg", Rating: Rating{Rate: 3.0, Count: 400}},
	{ID: 8, Title: "Pierced Owl Rose Gold Plated Earrings", Price: 10.99, Description: "Double flared tunnel plug earrings, rose gold plated.", Category: "jewelery", Image: "https://img.example.com/earrings.jpg", Rating: Rating{Rate: 1.9, Count: 100}},
	{ID: 9, Title: "WD 2TB Elements Portable External Hard Drive", Price: 64.0, Description: "USB 3.0 compatibility, fast data transfers.", Category: "electronics", Image: "https://img.example.com/wd.jpg", Rating: Rating{Rate: 3.3, Count: 203}},
	{ID: 10, Title: "SanDisk SSD PLUS 1TB Internal SSD", Price: 109.0, Description: "Easy upgrade for faster boot up, shutdown and response.", Category: "electronics", Image: "https://img.example.com/ssd.jpg", Rating: Rating{Rate: 2.9, Count: 470}},
	{ID: 11, Title: "Acer SB220Q 21.5 inch Full HD IPS Monitor", Price: 599.0, Description: "Ultra-thin IPS panel with radius curvature.", Category: "electronics", Image: "https://img.example.com/monitor.jpg", Rating: Rating{Rate: 2.9, Count: 250}},
	{ID: 12, Title: "DANVOUY Womens T Shirt Casual Cotton", Price: 12.99, Description: "Casual short sleeve letter-printed v-neck shirt.", Category: "women's clothing", Image: "https://img.example.com/danvouy.jpg", Rating: Rating{Rate: 3.6, Count: 145}},
}

// Products returns a copy of the seed catalog.
func Products() []Product {
	out := make([]Product, len(seedProducts))
	copy(out, seedProducts)
	return out
}

// ProductByID returns the product and whether it exists.
func ProductByID(id int) (Product, bool) {
	for _, p := range seedProducts {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Categories returns the distinct category names in first-seen order.
func Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range seedProducts {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// ProductsByCategory returns the products in a category; unknown
// categories yield an empty slice.
func ProductsByCategory(category string) []Product {
	out := []Product{}
	for _, p := range seedProducts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
