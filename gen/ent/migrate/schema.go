// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ContractsColumns holds the columns for the "contracts" table.
	ContractsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "party_a", Type: field.TypeString, Nullable: true},
		{Name: "party_b", Type: field.TypeString, Nullable: true},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "expiration_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "summary", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// ContractsTable holds the schema information for the "contracts" table.
	ContractsTable = &schema.Table{
		Name:       "contracts",
		Columns:    ContractsColumns,
		PrimaryKey: []*schema.Column{ContractsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "contracts_documents_contract",
				Columns:    []*schema.Column{ContractsColumns[8]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "contract_effective_date",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[3]},
			},
			{
				Name:    "contract_expiration_date",
				Unique:  false,
				Columns: []*schema.Column{ContractsColumns[4]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "category", Type: field.TypeString, Default: "general"},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "filename", Type: field.TypeString},
		{Name: "storage_path", Type: field.TypeString},
		{Name: "mime_type", Type: field.TypeString, Size: 100},
		{Name: "size_bytes", Type: field.TypeInt64},
		{Name: "llm_json", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_category",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1]},
			},
			{
				Name:    "document_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[2]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString, Nullable: true},
		{Name: "vendor_address", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "subtotal", Type: field.TypeFloat64, Nullable: true},
		{Name: "tax", Type: field.TypeFloat64, Nullable: true},
		{Name: "total", Type: field.TypeFloat64, Nullable: true},
		{Name: "currency", Type: field.TypeString, Size: 3, Default: "USD"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID, Unique: true},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_documents_invoice",
				Columns:    []*schema.Column{InvoicesColumns[12]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_invoice_number",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[3]},
			},
			{
				Name:    "invoice_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[4]},
			},
		},
	}
	// InvoiceLinesColumns holds the columns for the "invoice_lines" table.
	InvoiceLinesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "quantity", Type: field.TypeFloat64, Default: 1},
		{Name: "unit_price", Type: field.TypeFloat64, Default: 0},
		{Name: "line_total", Type: field.TypeFloat64, Default: 0},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// InvoiceLinesTable holds the schema information for the "invoice_lines" table.
	InvoiceLinesTable = &schema.Table{
		Name:       "invoice_lines",
		Columns:    InvoiceLinesColumns,
		PrimaryKey: []*schema.Column{InvoiceLinesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_lines_invoices_lines",
				Columns:    []*schema.Column{InvoiceLinesColumns[5]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoiceline_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{InvoiceLinesColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ContractsTable,
		DocumentsTable,
		InvoicesTable,
		InvoiceLinesTable,
	}
)

func init() {
	ContractsTable.ForeignKeys[0].RefTable = DocumentsTable
	ContractsTable.Annotation = &entsql.Annotation{
		Table: "contracts",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	InvoicesTable.ForeignKeys[0].RefTable = DocumentsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceLinesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceLinesTable.Annotation = &entsql.Annotation{
		Table: "invoice_lines",
	}
}
