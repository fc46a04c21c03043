package catalog

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

func makeProducts(names ...string) []models.Product {
	out := make([]models.Product, 0, len(names))
	for _, name := range names {
		out = append(out, models.Product{
			ID:       primitive.NewObjectID(),
			Name:     name,
			Category: "Geral",
			Price:    1,
			Unit:     "UN",
		})
	}
	return out
}

func TestPageCursorInitialState(t *testing.T) {
	c := NewPageCursor()
	if !c.HasMore() {
		t.Fatal("fresh cursor should report more pages")
	}
	if c.After() != nil {
		t.Fatal("fresh cursor should start before the first page")
	}
}

func TestPageCursorAdvance(t *testing.T) {
	tests := []struct {
		name        string
		pageLen     int
		wantHasMore bool
	}{
		{name: "full page", pageLen: PageSize, wantHasMore: true},
		{name: "short page", pageLen: 4, wantHasMore: false},
		{name: "empty page", pageLen: 0, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewPageCursor()
			page := makeProducts(make([]string, tt.pageLen)...)
			for i := range page {
				page[i].Name = "p" + string(rune('a'+i))
			}

			c.Advance(page, PageSize)

			if c.HasMore() != tt.wantHasMore {
				t.Fatalf("HasMore() = %v, want %v", c.HasMore(), tt.wantHasMore)
			}
			if tt.pageLen > 0 {
				after := c.After()
				if after == nil {
					t.Fatal("cursor should point at the last record")
				}
				last := page[len(page)-1]
				if after.Name != last.Name || after.ID != last.ID {
					t.Fatalf("cursor = %+v, want last record %q/%s", after, last.Name, last.ID.Hex())
				}
			}
		})
	}
}

func TestPageCursorNeverFlipsBack(t *testing.T) {
	c := NewPageCursor()
	c.Advance(makeProducts("a", "b"), PageSize)
	if c.HasMore() {
		t.Fatal("short page should exhaust the cursor")
	}

	// A later full page (e.g. from a retried fetch) must not revive it.
	c.Advance(makeProducts("a", "b", "c", "d", "e", "f", "g", "h", "i", "j"), PageSize)
	if c.HasMore() {
		t.Fatal("exhausted cursor flipped back to hasMore without a full reload")
	}
}
