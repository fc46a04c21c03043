package quotes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

// ErrInvalidQuote marks validation failures on the quote itself.
var ErrInvalidQuote = errors.New("invalid quote")

// QuoteStore is the slice of the document store the quote flows need.
type QuoteStore interface {
	ListQuotes(ctx context.Context) ([]models.Quote, error)
	InsertQuote(ctx context.Context, q models.Quote) (models.Quote, error)
	ReplaceQuote(ctx context.Context, q models.Quote) error
	DeleteQuote(ctx context.Context, id string) error
}

// CatalogSource provides the product list used for price autofill.
type CatalogSource interface {
	Catalog(ctx context.Context) ([]models.Product, error)
}

// Service manages quote creation, editing and deletion.
type Service struct {
	store   QuoteStore
	catalog CatalogSource
	logger  *zap.Logger
	now     func() time.Time
}

// NewService wires a quote service.
func NewService(store QuoteStore, catalog CatalogSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:   store,
		catalog: catalog,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns all persisted quotes.
func (s *Service) List(ctx context.Context) ([]models.Quote, error) {
	return s.store.ListQuotes(ctx)
}

// Create validates the draft, recomputes every line total, stamps the creation
// time and persists the quote as a single document.
func (s *Service) Create(ctx context.Context, q models.Quote) (models.Quote, error) {
	normalized, err := s.normalize(q)
	if err != nil {
		return models.Quote{}, err
	}

	created, err := s.store.InsertQuote(ctx, normalized)
	if err != nil {
		return models.Quote{}, fmt.Errorf("create quote: %w", err)
	}
	return created, nil
}

// Update validates and overwrites the full remote record.
func (s *Service) Update(ctx context.Context, q models.Quote) (models.Quote, error) {
	if q.ID.IsZero() {
		return models.Quote{}, fmt.Errorf("%w: missing id", ErrInvalidQuote)
	}

	normalized, err := s.normalize(q)
	if err != nil {
		return models.Quote{}, err
	}
	normalized.ID = q.ID

	if err := s.store.ReplaceQuote(ctx, normalized); err != nil {
		return models.Quote{}, fmt.Errorf("update quote: %w", err)
	}
	return normalized, nil
}

// Delete removes a quote by its hex identifier.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteQuote(ctx, id); err != nil {
		return fmt.Errorf("delete quote: %w", err)
	}
	return nil
}

// AutofillPrice resolves the catalog unit price for a typed product name.
func (s *Service) AutofillPrice(ctx context.Context, produto string) (float64, bool, error) {
	catalog, err := s.catalog.Catalog(ctx)
	if err != nil {
		return 0, false, fmt.Errorf("load catalog: %w", err)
	}
	price, found := Autofill(produto, catalog)
	return price, found, nil
}

// Preview rebuilds the item sequence with validated totals without persisting
// anything, returning the items and the grand total.
func Preview(items []models.QuoteItem) ([]models.QuoteItem, float64, error) {
	rebuilt, err := rebuildItems(items)
	if err != nil {
		return nil, 0, err
	}
	return rebuilt, GrandTotal(rebuilt), nil
}

// normalize validates the quote header, requires at least one item and
// recomputes every line total server-side.
func (s *Service) normalize(q models.Quote) (models.Quote, error) {
	switch {
	case strings.TrimSpace(q.Cliente) == "":
		return models.Quote{}, fmt.Errorf("%w: customer name is required", ErrInvalidQuote)
	case strings.TrimSpace(q.Telefone) == "":
		return models.Quote{}, fmt.Errorf("%w: phone is required", ErrInvalidQuote)
	case strings.TrimSpace(q.Data) == "":
		return models.Quote{}, fmt.Errorf("%w: delivery date is required", ErrInvalidQuote)
	case strings.TrimSpace(q.Endereco) == "":
		return models.Quote{}, fmt.Errorf("%w: delivery address is required", ErrInvalidQuote)
	case len(q.Itens) == 0:
		return models.Quote{}, fmt.Errorf("%w: at least one item is required", ErrInvalidQuote)
	}

	items, err := rebuildItems(q.Itens)
	if err != nil {
		return models.Quote{}, err
	}

	q.ID = primitive.NilObjectID
	q.Itens = items
	q.CriadoEm = s.now()
	return q, nil
}

func rebuildItems(items []models.QuoteItem) ([]models.QuoteItem, error) {
	out := make([]models.QuoteItem, 0, len(items))
	for _, item := range items {
		built, err := BuildItem(item.Quantidade, item.Produto, item.PrecoUnitario)
		if err != nil {
			return nil, err
		}
		out = append(out, built)
	}
	return out, nil
}
