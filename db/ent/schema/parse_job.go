package schema

import (
	"encoding/json"
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

type ParseJob struct{ ent.Schema }

func (ParseJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "parse_job"},
	}
}

func (ParseJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("household_id", uuid.UUID{}),
		field.UUID("receipt_id", uuid.UUID{}).Optional().Nillable(),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.JSON("ocr_payload", json.RawMessage{}).
			Optional(),
		field.Int("item_count").Optional().Nillable(),
		field.Float("confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
	}
}

func (ParseJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("household", Household.Type).
			Ref("jobs").
			Field("household_id").
			Unique().
			Required(),
		edge.From("receipt", Receipt.Type).
			Ref("jobs").
			Field("receipt_id").
			Unique(),
	}
}

func (ParseJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("household_id", "status", "started_at"),
		index.Fields("receipt_id"),
	}
}
