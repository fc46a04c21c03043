package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

// Merge appends to existing only those incoming products whose identifier is
// not already present. Fetching the same page twice therefore never duplicates
// entries, which makes page loads safe to retry or overlap.
func Merge(existing, incoming []models.Product) []models.Product {
	seen := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		seen[p.ID.Hex()] = struct{}{}
	}

	out := existing
	for _, p := range incoming {
		if _, ok := seen[p.ID.Hex()]; ok {
			continue
		}
		seen[p.ID.Hex()] = struct{}{}
		out = append(out, p)
	}
	return out
}

// GroupByCategory splits products by their category string and sorts each
// group by name using Brazilian Portuguese collation, matching how the listing
// screen renders the catalog. Category keys are compared exactly: categories
// differing only in case are distinct groups.
func GroupByCategory(products []models.Product) map[string][]models.Product {
	grouped := make(map[string][]models.Product)
	for _, p := range products {
		grouped[p.Category] = append(grouped[p.Category], p)
	}

	col := collate.New(language.BrazilianPortuguese)
	for _, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return col.CompareString(group[i].Name, group[j].Name) < 0
		})
	}
	return grouped
}

// Filter returns the products whose name or category contains term,
// case-insensitively. An empty term matches everything.
func Filter(products []models.Product, term string) []models.Product {
	if term == "" {
		return products
	}

	needle := strings.ToLower(term)
	var out []models.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
