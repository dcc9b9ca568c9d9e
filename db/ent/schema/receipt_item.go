package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type ReceiptItem struct{ ent.Schema }

func (ReceiptItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipt_items"},
	}
}

func (ReceiptItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("receipt_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.Int("quantity").Min(1).Default(1),
		field.Float("unit_price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_price").Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("line_number").Min(0),
		field.Float("confidence").Min(0).Max(1),
	}
}

func (ReceiptItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("receipt", Receipt.Type).
			Ref("items").
			Field("receipt_id").
			Required().
			Unique(),
	}
}

func (ReceiptItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("receipt_id", "line_number"),
	}
}
