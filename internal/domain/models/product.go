package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Product is one catalog entry. A zero ID means the product has not been
// persisted yet; the store assigns the identifier on insert.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name     string             `bson:"name" json:"name"`
	Category string             `bson:"category" json:"category"`
	Price    float64            `bson:"price" json:"price"`
	Unit     string             `bson:"unit" json:"unit"`
	Image    string             `bson:"image,omitempty" json:"image,omitempty"`
}

// SuggestedUnits lists the units of measure offered by the product form.
// The field itself is free text; these are suggestions, not an enum.
var SuggestedUnits = []string{
	"UN", "KG", "m", "m²", "m³", "PC", "L",
	"LATA (0,9L)", "GALÃO (3,6L)", "LATA (18L)",
	"SACO (15KG)", "SACO (20KG)", "SACO (50KG)",
}
