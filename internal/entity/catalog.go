package entity

// Catalog is the immutable product data the search overlay is built from.
type Catalog struct {
	RecentlyViewed []Product
	Related        []Product
	SaveSeeds      map[string]int
}

// Seeds returns a copy of the seed table so callers cannot mutate the catalog.
func (c Catalog) Seeds() map[string]int {
	out := make(map[string]int, len(c.SaveSeeds))
	for k, v := range c.SaveSeeds {
		out[k] = v
	}
	return out
}

func (c Catalog) FindBySlug(slug string) (Product, bool) {
	for _, list := range [][]Product{c.RecentlyViewed, c.Related} {
		for _, p := range list {
			if p.Slug == slug {
				return p, true
			}
		}
	}
	return Product{}, false
}

func DefaultCatalog() Catalog {
	return Catalog{
		RecentlyViewed: []Product{
			{ID: 1, Name: "Double Chocolate Chip Cookies", Image: "/images/Cookies.jpg", Slug: "double-chocolate-chip-cookies"},
			{ID: 2, Name: "Chewy Funfetti Blondies", Image: "/images/Bars.jpg", Slug: "chewy-funfetti-blondies"},
			{ID: 3, Name: "S'mores Cookies", Image: "/images/cookies-2.jpg", Slug: "smores-cookies"},
		},
		Related: []Product{
			{ID: 4, Name: "Fudgy Oreo Brownies", Image: "/images/brownies.jpg", Slug: "fudgy-oreo-brownies"},
			{ID: 5, Name: "Vanilla Bean Sponge Cake", Image: "/images/Zucchini-Bread-Cake-3.jpg", Slug: "vanilla-bean-sponge-cake", DisplaySaves: 15},
			{ID: 6, Name: "Lemon Bars", Image: "/images/bars-category.jpg", Slug: "lemon-bars", DisplaySaves: 22},
			{ID: 7, Name: "Honey Almond Cookies", Image: "/images/cookies-category.jpg", Slug: "honey-almond-cookies", DisplaySaves: 19},
			{ID: 8, Name: "Fresh Blueberry Muffins", Image: "/images/muffin-category.jpg", Slug: "blueberry-muffins", DisplaySaves: 12},
			{ID: 9, Name: "Apple Cinnamon Pie", Image: "/images/pies-category.jpg", Slug: "apple-cinnamon-pie", DisplaySaves: 27},
		},
		SaveSeeds: map[string]int{
			"double-chocolate-chip-cookies": 24,
			"chewy-funfetti-blondies":       18,
			"smores-cookies":                31,
			"fudgy-oreo-brownies":           29,
		},
	}
}
