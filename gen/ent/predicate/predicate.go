// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Contract is the predicate function for contract builders.
type Contract func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Invoice is the predicate function for invoice builders.
type Invoice func(*sql.Selector)

// InvoiceLine is the predicate function for invoiceline builders.
type InvoiceLine func(*sql.Selector)
