package catalog

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/orcafacil/orcafacil/internal/domain/models"
	"github.com/orcafacil/orcafacil/internal/repository/mongodb"
)

// fakeStore is an in-memory ProductStore that counts write calls.
type fakeStore struct {
	products []models.Product
	inserts  int
	replaces int
	deletes  int
	err      error
}

func (f *fakeStore) ProductPage(ctx context.Context, after *mongodb.ProductCursor, limit int64) ([]models.Product, error) {
	if int64(len(f.products)) < limit {
		return f.products, f.err
	}
	return f.products[:limit], f.err
}

func (f *fakeStore) ListProducts(ctx context.Context) ([]models.Product, error) {
	return f.products, f.err
}

func (f *fakeStore) InsertProduct(ctx context.Context, p models.Product) (models.Product, error) {
	f.inserts++
	if f.err != nil {
		return models.Product{}, f.err
	}
	p.ID = primitive.NewObjectID()
	f.products = append(f.products, p)
	return p, nil
}

func (f *fakeStore) ReplaceProduct(ctx context.Context, p models.Product) error {
	f.replaces++
	if f.err != nil {
		return f.err
	}
	for i := range f.products {
		if f.products[i].ID == p.ID {
			f.products[i] = p
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func (f *fakeStore) DeleteProduct(ctx context.Context, id string) error {
	f.deletes++
	if f.err != nil {
		return f.err
	}
	for i := range f.products {
		if f.products[i].ID.Hex() == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return mongodb.ErrNotFound
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		product models.Product
	}{
		{name: "empty name", product: models.Product{Category: "X", Price: 10, Unit: "UN"}},
		{name: "empty category", product: models.Product{Name: "Areia", Price: 10, Unit: "UN"}},
		{name: "zero price", product: models.Product{Name: "Areia", Category: "X", Unit: "UN"}},
		{name: "negative price", product: models.Product{Name: "Areia", Category: "X", Price: -1, Unit: "UN"}},
		{name: "empty unit", product: models.Product{Name: "Areia", Category: "X", Price: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeStore{}
			svc := NewService(store, nil, nil)

			_, err := svc.Create(context.Background(), tt.product)
			if !errors.Is(err, ErrInvalidProduct) {
				t.Fatalf("err = %v, want ErrInvalidProduct", err)
			}
			if store.inserts != 0 {
				t.Fatal("rejected product must not reach the store")
			}
		})
	}
}

func TestCreateAppendsToWindow(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, nil)

	created, err := svc.Create(context.Background(), models.Product{
		Name: "Areia fina", Category: "Agregados", Price: 32.5, Unit: "M3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("store-assigned id missing")
	}

	window := svc.Window("")
	if len(window) != 1 || window[0].ID != created.ID {
		t.Fatalf("window = %v, want the created product", window)
	}
}

func TestUpdateReplacesWindowEntry(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, nil)

	created, err := svc.Create(context.Background(), models.Product{
		Name: "Cimento", Category: "Basicos", Price: 28, Unit: "SC",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	created.Price = 31.9
	if err := svc.Update(context.Background(), created); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if got := svc.Window("")[0].Price; got != 31.9 {
		t.Fatalf("window price = %v, want 31.9", got)
	}
	if store.replaces != 1 {
		t.Fatalf("replaces = %d, want 1", store.replaces)
	}
}

func TestUpdateRequiresID(t *testing.T) {
	svc := NewService(&fakeStore{}, nil, nil)

	err := svc.Update(context.Background(), models.Product{
		Name: "Cimento", Category: "Basicos", Price: 28, Unit: "SC",
	})
	if !errors.Is(err, ErrInvalidProduct) {
		t.Fatalf("err = %v, want ErrInvalidProduct", err)
	}
}

func TestDeleteRemovesFromWindowAfterRemote(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, nil)

	created, err := svc.Create(context.Background(), models.Product{
		Name: "Brita", Category: "Agregados", Price: 40, Unit: "M3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(context.Background(), created.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(svc.Window("")) != 0 {
		t.Fatal("deleted product still in window")
	}
}

func TestDeleteFailureLeavesWindow(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, nil, nil)

	created, err := svc.Create(context.Background(), models.Product{
		Name: "Brita", Category: "Agregados", Price: 40, Unit: "M3",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	store.err = errors.New("network down")
	if err := svc.Delete(context.Background(), created.ID.Hex()); err == nil {
		t.Fatal("expected delete error")
	}
	if len(svc.Window("")) != 1 {
		t.Fatal("window mutated although the remote delete failed")
	}
}
