package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Receipt struct{ ent.Schema }

func (Receipt) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "receipts"},
	}
}

func (Receipt) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("household_id", uuid.UUID{}),
		field.String("merchant_name").Optional(),
		field.Time("receipt_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("calculated_total").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Bool("total_matches").Default(false),
		field.String("verification").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Receipt) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY receipts -> ONE household (FK: receipts.household_id)
		edge.From("household", Household.Type).
			Ref("receipts").
			Field("household_id").
			Required().
			Unique(),
		// ONE receipt -> MANY items
		edge.To("items", ReceiptItem.Type),
		// ONE receipt -> MANY jobs
		edge.To("jobs", ParseJob.Type),
	}
}

func (Receipt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "receipt_date"),
	}
}
