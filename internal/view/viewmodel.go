// Package view maps catalog and cart records to rendering-agnostic view
// models. The mapping is pure so the query/cart core can be tested without
// any terminal, and the lipgloss layer only ever formats strings.
package view

import (
	"fmt"
	"math"
	"strings"

	"neonmart/internal/cart"
	"neonmart/internal/catalog"
)

const starCount = 5

// Card is the view model for one product card.
type Card struct {
	Index       int // position in the query result, drives entrance stagger
	Title       string
	Description string
	Price       string
	Stars       string
	Badge       string // empty when the product carries no label
	Image       string
}

// CartLine is the view model for one cart panel row.
type CartLine struct {
	Index int // position in the cart sequence, routes the remove trigger
	Name  string
	Price string
	Image string
}

// Price formats a price for display with two decimals.
func Price(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Stars renders a 5-symbol rating: filled count is floor(rating), the
// remainder unfilled. Ratings outside [0,5] are clamped.
func Stars(rating float64) string {
	filled := int(math.Floor(rating))
	if filled < 0 {
		filled = 0
	}
	if filled > starCount {
		filled = starCount
	}
	return strings.Repeat("★", filled) + strings.Repeat("☆", starCount-filled)
}

// CardFrom builds the card view model for a product at the given result
// position.
func CardFrom(p catalog.Product, index int) Card {
	return Card{
		Index:       index,
		Title:       p.Name,
		Description: p.Description,
		Price:       Price(p.Price),
		Stars:       Stars(p.Rating),
		Badge:       p.Badge,
		Image:       p.Image,
	}
}

// Cards maps a query result to card view models in result order.
func Cards(products []catalog.Product) []Card {
	out := make([]Card, len(products))
	for i, p := range products {
		out[i] = CardFrom(p, i)
	}
	return out
}

// CartLineFrom builds the cart row view model for an entry at the given
// cart position.
func CartLineFrom(e cart.Entry, index int) CartLine {
	return CartLine{
		Index: index,
		Name:  e.Name,
		Price: Price(e.Price),
		Image: e.Image,
	}
}

// CartLines maps the cart sequence to row view models in cart order.
func CartLines(entries []cart.Entry) []CartLine {
	out := make([]CartLine, len(entries))
	for i, e := range entries {
		out[i] = CartLineFrom(e, i)
	}
	return out
}
