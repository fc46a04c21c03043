package catalog

import (
	"github.com/orcafacil/orcafacil/internal/domain/models"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
)

// PageCursor tracks where the next catalog page should start and whether the
// store may still have more records. It only moves forward: there is no page
// back, a full reload builds a fresh cursor.
type PageCursor struct {
	last    *mongodb.ProductCursor
	hasMore bool
}

// NewPageCursor returns a cursor positioned before the first page.
func NewPageCursor() *PageCursor {
	return &PageCursor{hasMore: true}
}

// After returns the exclusive-start position for the next page, nil before the
// first fetch.
func (c *PageCursor) After() *mongodb.ProductCursor {
	return c.last
}

// HasMore reports whether another page may exist. Initially true; it never
// flips back to true once a short or empty page has been seen.
func (c *PageCursor) HasMore() bool {
	return c.hasMore
}

// Advance records the last record of a fetched page. A page shorter than
// pageSize (including an empty one) means the collection is exhausted, and an
// exhausted cursor stays exhausted.
func (c *PageCursor) Advance(page []models.Product, pageSize int) {
	if len(page) > 0 {
		last := page[len(page)-1]
		c.last = &mongodb.ProductCursor{Name: last.Name, ID: last.ID}
	}
	c.hasMore = c.hasMore && len(page) == pageSize && pageSize > 0
}
