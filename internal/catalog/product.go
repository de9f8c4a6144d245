package catalog

import "fmt"

type Product struct {
	ID     uint64  `json:"id"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Active bool    `json:"active"`
}

// Displayable is implemented by anything that can render a one-line summary.
type Displayable interface {
	Summary() string
}

// NewProduct accepts any name and price as-is, including empty names and NaN.
func NewProduct(id uint64, name string, price float64) Product {
	return Product{
		ID:     id,
		Name:   name,
		Price:  price,
		Active: true,
	}
}

// DisplayPrice renders the price with exactly two decimals, rounded from the
// exact binary value (ties to even), e.g. "$9.99".
func (p *Product) DisplayPrice() string {
	return fmt.Sprintf("$%.2f", p.Price)
}

func (p *Product) Deactivate() {
	p.Active = false
}

func (p *Product) Summary() string {
	return fmt.Sprintf("%s (%s)", p.Name, p.DisplayPrice())
}
