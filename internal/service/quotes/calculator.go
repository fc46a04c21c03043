package quotes

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

// ErrInvalidItem marks a rejected line item; nothing is appended and no store
// call happens.
var ErrInvalidItem = errors.New("invalid line item")

// BuildItem validates one line and computes its total. Quantity and unit price
// must be positive and the product name non-empty.
func BuildItem(quantidade float64, produto string, precoUnitario float64) (models.QuoteItem, error) {
	switch {
	case strings.TrimSpace(produto) == "":
		return models.QuoteItem{}, fmt.Errorf("%w: product name is required", ErrInvalidItem)
	case quantidade <= 0:
		return models.QuoteItem{}, fmt.Errorf("%w: quantity must be positive", ErrInvalidItem)
	case precoUnitario <= 0:
		return models.QuoteItem{}, fmt.Errorf("%w: unit price must be positive", ErrInvalidItem)
	}

	return models.QuoteItem{
		Quantidade:    quantidade,
		Produto:       produto,
		PrecoUnitario: precoUnitario,
		PrecoTotal:    quantidade * precoUnitario,
	}, nil
}

// Autofill looks the typed product name up in the catalog by case-insensitive
// exact match and returns the catalog unit price. The sync is one way: editing
// the price on the quote never writes back to the catalog.
func Autofill(produto string, catalog []models.Product) (float64, bool) {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, produto) {
			return p.Price, true
		}
	}
	return 0, false
}

// GrandTotal sums the line totals. It is recomputed on every call and never
// stored, so it cannot drift from the item sequence.
func GrandTotal(items []models.QuoteItem) float64 {
	var total float64
	for _, item := range items {
		total += item.PrecoTotal
	}
	return total
}
