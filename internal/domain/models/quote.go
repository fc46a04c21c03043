package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuoteItem is one line of a quote. Produto and PrecoUnitario are snapshot
// copies taken from the catalog at edit time, not references: renaming or
// deleting a product later does not change existing quotes.
type QuoteItem struct {
	Quantidade    float64 `bson:"quantidade" json:"quantidade"`
	Produto       string  `bson:"produto" json:"produto"`
	PrecoUnitario float64 `bson:"precoUnitario" json:"precoUnitario"`
	PrecoTotal    float64 `bson:"precoTotal" json:"precoTotal"`
}

// Quote is an itemized price quote ("orçamento"). Cliente and Telefone are
// denormalized copies of the customer record. Field names follow the persisted
// document layout of the `orcamentos` collection.
type Quote struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Cliente  string             `bson:"cliente" json:"cliente"`
	Telefone string             `bson:"telefone" json:"telefone"`
	Data     string             `bson:"data" json:"data"`
	Endereco string             `bson:"endereco" json:"endereco"`
	Itens    []QuoteItem        `bson:"itens" json:"itens"`
	CriadoEm time.Time          `bson:"criadoEm" json:"criadoEm"`
}
