package entity

import "fmt"

type Product struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Slug  string `json:"slug"`

	// DisplaySaves is the count shown on the card while the slug has no tracked counter.
	DisplaySaves int `json:"-"`
}

func (p Product) Href() string {
	return fmt.Sprintf("/products/%s", p.Slug)
}

// ProductCard is a product as the overlay renders it.
type ProductCard struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Slug  string `json:"slug"`
	Href  string `json:"href"`
	Saves int    `json:"saves"`
}
