package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

// ErrInvalidProduct marks validation failures. No store call happens when a
// product is rejected.
var ErrInvalidProduct = errors.New("invalid product")

// ProductStore is the slice of the document store the catalog needs.
type ProductStore interface {
	ProductPager
	ListProducts(ctx context.Context) ([]models.Product, error)
	InsertProduct(ctx context.Context, p models.Product) (models.Product, error)
	ReplaceProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// ImageChecker probes whether a product image URL is reachable.
type ImageChecker interface {
	Check(ctx context.Context, rawURL string) error
}

// Service manages the product catalog: the paged listing window plus
// create/edit/delete against the document store.
type Service struct {
	store  ProductStore
	loader *Loader
	images ImageChecker
	logger *zap.Logger
}

// NewService wires a catalog service. images may be nil to skip URL probing.
func NewService(store ProductStore, images ImageChecker, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:  store,
		loader: NewLoader(store, logger.Named("loader")),
		images: images,
		logger: logger,
	}
}

// LoadMore requests the next catalog page; see Loader.LoadMore.
func (s *Service) LoadMore(ctx context.Context) error {
	return s.loader.LoadMore(ctx)
}

// HasMore reports whether another catalog page may exist.
func (s *Service) HasMore() bool {
	return s.loader.HasMore()
}

// Window returns the loaded products matching the search term (empty term
// returns the whole window).
func (s *Service) Window(term string) []models.Product {
	return Filter(s.loader.Snapshot(), term)
}

// Catalog returns the full product collection, bypassing pagination. The
// quote builder uses it for price autofill.
func (s *Service) Catalog(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

// Categories returns the distinct category strings of the loaded window in
// first-seen order, feeding the category suggestions of the product form.
func (s *Service) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range s.loader.Snapshot() {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Create validates and persists a new product, then adds it to the window.
func (s *Service) Create(ctx context.Context, p models.Product) (models.Product, error) {
	if err := validate(p); err != nil {
		return models.Product{}, err
	}
	s.checkImage(ctx, p)

	created, err := s.store.InsertProduct(ctx, p)
	if err != nil {
		return models.Product{}, fmt.Errorf("create product: %w", err)
	}

	s.loader.Append(created)
	return created, nil
}

// Update validates and overwrites the full remote record, then swaps the
// window entry with the same id.
func (s *Service) Update(ctx context.Context, p models.Product) error {
	if p.ID.IsZero() {
		return fmt.Errorf("%w: missing id", ErrInvalidProduct)
	}
	if err := validate(p); err != nil {
		return err
	}
	s.checkImage(ctx, p)

	if err := s.store.ReplaceProduct(ctx, p); err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	s.loader.ReplaceByID(p)
	return nil
}

// Delete removes the product remotely, then from the window. The window is
// only touched after the remote delete resolves; quotes that copied the
// product's name keep it.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	s.loader.RemoveByID(id)
	return nil
}

func (s *Service) checkImage(ctx context.Context, p models.Product) {
	if s.images == nil || p.Image == "" {
		return
	}
	// Unreachable images degrade the listing but never block persistence.
	if err := s.images.Check(ctx, p.Image); err != nil {
		s.logger.Warn("product image unreachable",
			zap.String("name", p.Name),
			zap.String("url", p.Image),
			zap.Error(err))
	}
}

func validate(p models.Product) error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidProduct)
	case strings.TrimSpace(p.Category) == "":
		return fmt.Errorf("%w: category is required", ErrInvalidProduct)
	case p.Price <= 0:
		return fmt.Errorf("%w: price must be positive", ErrInvalidProduct)
	case strings.TrimSpace(p.Unit) == "":
		return fmt.Errorf("%w: unit is required", ErrInvalidProduct)
	}
	return nil
}
