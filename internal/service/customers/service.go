package customers

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

// ErrInvalidCustomer marks validation failures. No store call happens when a
// customer is rejected.
var ErrInvalidCustomer = errors.New("invalid customer")

// CustomerStore is the slice of the document store the customer flows need.
type CustomerStore interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id primitive.ObjectID) (models.Customer, error)
	InsertCustomer(ctx context.Context, c models.Customer) (models.Customer, error)
	ReplaceCustomer(ctx context.Context, c models.Customer) error
	DeleteCustomer(ctx context.Context, id string) error
}

// Service manages customer registration, editing and deletion.
type Service struct {
	store  CustomerStore
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires a customer service.
func NewService(store CustomerStore, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger, now: time.Now}
}

// List returns all registered customers.
func (s *Service) List(ctx context.Context) ([]models.Customer, error) {
	return s.store.ListCustomers(ctx)
}

// Create validates the draft, stamps the creation time and persists it.
func (s *Service) Create(ctx context.Context, c models.Customer) (models.Customer, error) {
	if err := validate(c); err != nil {
		return models.Customer{}, err
	}

	c.ID = primitive.NilObjectID
	c.CriadoEm = s.now()

	created, err := s.store.InsertCustomer(ctx, c)
	if err != nil {
		return models.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	return created, nil
}

// Update validates and overwrites the full remote record. A payload without a
// creation timestamp keeps the stored one; the overwrite must not erase when
// the customer was registered.
func (s *Service) Update(ctx context.Context, c models.Customer) error {
	if c.ID.IsZero() {
		return fmt.Errorf("%w: missing id", ErrInvalidCustomer)
	}
	if err := validate(c); err != nil {
		return err
	}

	if c.CriadoEm.IsZero() {
		existing, err := s.store.GetCustomer(ctx, c.ID)
		if err != nil {
			return fmt.Errorf("update customer: %w", err)
		}
		c.CriadoEm = existing.CriadoEm
	}

	if err := s.store.ReplaceCustomer(ctx, c); err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete removes a customer. Quotes keep their denormalized name and phone
// copies; nothing cascades.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteCustomer(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func validate(c models.Customer) error {
	switch {
	case strings.TrimSpace(c.Nome) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidCustomer)
	case strings.TrimSpace(c.Telefone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidCustomer)
	case strings.TrimSpace(c.Endereco) == "":
		return fmt.Errorf("%w: address is required", ErrInvalidCustomer)
	}
	return nil
}
