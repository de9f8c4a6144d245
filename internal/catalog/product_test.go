package catalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProduct_StartsActive(t *testing.T) {
	p := NewProduct(7, "Widget", 9.99)

	assert.Equal(t, uint64(7), p.ID)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 9.99, p.Price)
	assert.True(t, p.Active)
}

func TestNewProduct_AcceptsAnything(t *testing.T) {
	p := NewProduct(1, "", -3)
	assert.Equal(t, "", p.Name)
	assert.Equal(t, float64(-3), p.Price)

	nan := NewProduct(2, "nan", math.NaN())
	assert.True(t, math.IsNaN(nan.Price))
}

func TestProduct_DisplayPrice(t *testing.T) {
	cases := []struct {
		price float64
		want  string
	}{
		{9.99, "$9.99"},
		{0, "$0.00"},
		{9.995, "$9.99"}, // stored just below the tie
		{1.005, "$1.00"},
		{0.125, "$0.12"}, // exact tie rounds to even
		{1234.5, "$1234.50"},
		{-1.5, "$-1.50"},
		{1e21, "$1000000000000000000000.00"},
		{math.NaN(), "$NaN"},
		{math.Inf(1), "$+Inf"},
		{math.Inf(-1), "$-Inf"},
	}

	for _, tc := range cases {
		p := NewProduct(1, "x", tc.price)
		assert.Equal(t, tc.want, p.DisplayPrice(), "price=%v", tc.price)
	}
}

func TestProduct_Deactivate_Idempotent(t *testing.T) {
	p := NewProduct(1, "Widget", 9.99)

	p.Deactivate()
	assert.False(t, p.Active)

	p.Deactivate()
	assert.False(t, p.Active)
}

func TestProduct_Summary(t *testing.T) {
	p := NewProduct(1, "Widget", 9.99)

	var d Displayable = &p
	assert.Equal(t, "Widget ($9.99)", d.Summary())

	empty := NewProduct(2, "", 0)
	assert.Equal(t, " ($0.00)", empty.Summary())
}
