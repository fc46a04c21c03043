package catalog

import (
	"reflect"
	"testing"

	"github.com/orcafacil/orcafacil/internal/domain/models"
)

func TestMergeSkipsKnownIDs(t *testing.T) {
	existing := makeProducts("areia", "brita")
	overlap := existing[1]
	incoming := append([]models.Product{overlap}, makeProducts("cimento")...)

	merged := Merge(existing, incoming)

	if len(merged) != 3 {
		t.Fatalf("merged length = %d, want 3", len(merged))
	}
	seen := map[string]bool{}
	for _, p := range merged {
		if seen[p.ID.Hex()] {
			t.Fatalf("duplicate id %s after merge", p.ID.Hex())
		}
		seen[p.ID.Hex()] = true
	}
	if merged[2].Name != "cimento" {
		t.Fatalf("new records must append in order, got %q last", merged[2].Name)
	}
}

func TestMergeIsIdempotent(t *testing.T) {
	existing := makeProducts("areia", "brita", "cimento")
	page := existing[:2]

	once := Merge(existing, page)
	twice := Merge(once, page)

	if !reflect.DeepEqual(once, twice) {
		t.Fatal("merging the same page twice changed the list")
	}
	if len(twice) != 3 {
		t.Fatalf("length = %d, want 3", len(twice))
	}
}

func TestGroupByCategorySortsWithCollation(t *testing.T) {
	products := makeProducts("cimento", "areia", "álcool")
	for i := range products {
		products[i].Category = "Material"
	}

	grouped := GroupByCategory(products)

	group, ok := grouped["Material"]
	if !ok {
		t.Fatal("expected group Material")
	}
	// Byte order would put "álcool" last; pt-BR collation sorts it first.
	want := []string{"álcool", "areia", "cimento"}
	for i, name := range want {
		if group[i].Name != name {
			t.Fatalf("group[%d] = %q, want %q", i, group[i].Name, name)
		}
	}
}

func TestGroupByCategoryKeysAreCaseSensitive(t *testing.T) {
	products := makeProducts("areia", "brita")
	products[0].Category = "Material"
	products[1].Category = "material"

	grouped := GroupByCategory(products)

	if len(grouped) != 2 {
		t.Fatalf("got %d groups, want 2 (keys differing in case are distinct)", len(grouped))
	}
}

func TestGroupByCategoryIsDeterministic(t *testing.T) {
	products := makeProducts("cimento", "areia", "brita", "cal")
	products[1].Category = "Agregados"
	products[2].Category = "Agregados"

	first := GroupByCategory(products)
	second := GroupByCategory(products)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("grouping the same input twice produced different output")
	}
}

func TestFilter(t *testing.T) {
	products := makeProducts("Areia fina", "Cimento CP II", "Brita 1")
	products[2].Category = "Agregados"

	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term matches all", term: "", want: []string{"Areia fina", "Cimento CP II", "Brita 1"}},
		{name: "name substring", term: "cimento", want: []string{"Cimento CP II"}},
		{name: "case insensitive", term: "AREIA", want: []string{"Areia fina"}},
		{name: "category substring", term: "agregado", want: []string{"Brita 1"}},
		{name: "no match", term: "tijolo", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(products, tt.term)
			var names []string
			for _, p := range got {
				names = append(names, p.Name)
			}
			if !reflect.DeepEqual(names, tt.want) {
				t.Fatalf("Filter(%q) = %v, want %v", tt.term, names, tt.want)
			}
		})
	}
}
