package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer is a registered client. Field names follow the persisted document
// layout of the `clientes` collection and must not be renamed.
type Customer struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Nome        string             `bson:"nome" json:"nome"`
	Telefone    string             `bson:"telefone" json:"telefone"`
	Endereco    string             `bson:"endereco" json:"endereco"`
	Observacoes string             `bson:"observacoes,omitempty" json:"observacoes,omitempty"`
	CriadoEm    time.Time          `bson:"criadoEm" json:"criadoEm"`
}
