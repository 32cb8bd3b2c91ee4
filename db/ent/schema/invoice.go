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

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("document_id", uuid.UUID{}).
			Unique(),
		field.String("vendor_name").Optional().Nillable(),
		field.String("vendor_address").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("invoice_number").Optional().Nillable(),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("subtotal").Optional().Nillable(),
		field.Float("tax").Optional().Nillable(),
		field.Float("total").Optional().Nillable(),
		field.String("currency").Default("USD").MaxLen(3),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("invoice").
			Field("document_id").
			Unique().
			Required(),
		edge.To("lines", InvoiceLine.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_number"),
		index.Fields("invoice_date"),
	}
}
