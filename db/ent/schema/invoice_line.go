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

// InvoiceLine rows carry no identity across extraction runs; every run
// deletes the invoice's lines and inserts the freshly extracted set.
type InvoiceLine struct{ ent.Schema }

func (InvoiceLine) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoice_lines"},
	}
}

func (InvoiceLine) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("description").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("quantity").Default(1),
		field.Float("unit_price").Default(0),
		field.Float("line_total").Default(0),
	}
}

func (InvoiceLine) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("invoice", Invoice.Type).
			Ref("lines").
			Field("invoice_id").
			Unique().
			Required(),
	}
}

func (InvoiceLine) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("invoice_id"),
	}
}
