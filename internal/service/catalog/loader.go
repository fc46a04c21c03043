package catalog

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
)

// PageSize is the fixed number of products requested per fetch.
const PageSize = 10

// ProductPager fetches one ordered page of the product collection.
type ProductPager interface {
	ProductPage(ctx context.Context, after *mongodb.ProductCursor, limit int64) ([]models.Product, error)
}

// Loader owns the incrementally loaded product window: the merged list of all
// pages fetched so far plus the cursor for the next one. At most one fetch is
// in flight at a time; redundant LoadMore calls are no-ops, so scroll
// triggers, explicit load-more actions and the initial load can all call it
// without coordination.
type Loader struct {
	pager  ProductPager
	logger *zap.Logger

	mu       sync.Mutex
	cursor   *PageCursor
	fetching bool
	products []models.Product
}

// NewLoader builds a loader positioned before the first page.
func NewLoader(pager ProductPager, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		pager:  pager,
		logger: logger,
		cursor: NewPageCursor(),
	}
}

// LoadMore fetches and merges the next page. It returns immediately when a
// fetch is already in flight or the collection is exhausted. On fetch failure
// the cursor and the window are left untouched and the in-flight flag is
// cleared, so a later trigger simply retries the same page.
func (l *Loader) LoadMore(ctx context.Context) error {
	l.mu.Lock()
	if l.fetching || !l.cursor.HasMore() {
		l.mu.Unlock()
		return nil
	}
	l.fetching = true
	after := l.cursor.After()
	l.mu.Unlock()

	page, err := l.pager.ProductPage(ctx, after, PageSize)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.fetching = false

	if err != nil {
		return fmt.Errorf("fetch product page: %w", err)
	}

	l.products = Merge(l.products, page)
	l.cursor.Advance(page, PageSize)

	l.logger.Debug("product page merged",
		zap.Int("page_len", len(page)),
		zap.Int("window_len", len(l.products)),
		zap.Bool("has_more", l.cursor.HasMore()))
	return nil
}

// HasMore reports whether another page may exist.
func (l *Loader) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cursor.HasMore()
}

// Snapshot returns a copy of the loaded window.
func (l *Loader) Snapshot() []models.Product {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Product, len(l.products))
	copy(out, l.products)
	return out
}

// Append adds a freshly persisted product to the window unless its id is
// already present.
func (l *Loader) Append(p models.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products = Merge(l.products, []models.Product{p})
}

// ReplaceByID swaps the window entry with the same identifier, if any.
func (l *Loader) ReplaceByID(p models.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.products {
		if l.products[i].ID == p.ID {
			l.products[i] = p
			return
		}
	}
}

// RemoveByID drops the window entry with the given hex identifier, if any.
func (l *Loader) RemoveByID(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.products {
		if l.products[i].ID.Hex() == id {
			l.products = append(l.products[:i], l.products[i+1:]...)
			return
		}
	}
}
