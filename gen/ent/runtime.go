// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docflow/db/ent/schema"
	"github.com/joseph-ayodele/docflow/gen/ent/contract"
	"github.com/joseph-ayodele/docflow/gen/ent/document"
	"github.com/joseph-ayodele/docflow/gen/ent/invoice"
	"github.com/joseph-ayodele/docflow/gen/ent/invoiceline"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	contractFields := schema.Contract{}.Fields()
	_ = contractFields
	// contractDescCreatedAt is the schema descriptor for created_at field.
	contractDescCreatedAt := contractFields[7].Descriptor()
	// contract.DefaultCreatedAt holds the default value on creation for the created_at field.
	contract.DefaultCreatedAt = contractDescCreatedAt.Default.(func() time.Time)
	// contractDescUpdatedAt is the schema descriptor for updated_at field.
	contractDescUpdatedAt := contractFields[8].Descriptor()
	// contract.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	contract.DefaultUpdatedAt = contractDescUpdatedAt.Default.(func() time.Time)
	// contract.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	contract.UpdateDefaultUpdatedAt = contractDescUpdatedAt.UpdateDefault.(func() time.Time)
	// contractDescID is the schema descriptor for id field.
	contractDescID := contractFields[0].Descriptor()
	// contract.DefaultID holds the default value on creation for the id field.
	contract.DefaultID = contractDescID.Default.(func() uuid.UUID)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescCategory is the schema descriptor for category field.
	documentDescCategory := documentFields[1].Descriptor()
	// document.DefaultCategory holds the default value on creation for the category field.
	document.DefaultCategory = documentDescCategory.Default.(string)
	// document.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	document.CategoryValidator = documentDescCategory.Validators[0].(func(string) error)
	// documentDescStatus is the schema descriptor for status field.
	documentDescStatus := documentFields[2].Descriptor()
	// document.DefaultStatus holds the default value on creation for the status field.
	document.DefaultStatus = documentDescStatus.Default.(string)
	// document.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	document.StatusValidator = documentDescStatus.Validators[0].(func(string) error)
	// documentDescFilename is the schema descriptor for filename field.
	documentDescFilename := documentFields[3].Descriptor()
	// document.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	document.FilenameValidator = documentDescFilename.Validators[0].(func(string) error)
	// documentDescStoragePath is the schema descriptor for storage_path field.
	documentDescStoragePath := documentFields[4].Descriptor()
	// document.StoragePathValidator is a validator for the "storage_path" field. It is called by the builders before save.
	document.StoragePathValidator = documentDescStoragePath.Validators[0].(func(string) error)
	// documentDescMimeType is the schema descriptor for mime_type field.
	documentDescMimeType := documentFields[5].Descriptor()
	// document.MimeTypeValidator is a validator for the "mime_type" field. It is called by the builders before save.
	document.MimeTypeValidator = func() func(string) error {
		validators := documentDescMimeType.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(mime_type string) error {
			for _, fn := range fns {
				if err := fn(mime_type); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// documentDescSizeBytes is the schema descriptor for size_bytes field.
	documentDescSizeBytes := documentFields[6].Descriptor()
	// document.SizeBytesValidator is a validator for the "size_bytes" field. It is called by the builders before save.
	document.SizeBytesValidator = documentDescSizeBytes.Validators[0].(func(int64) error)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[9].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[10].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// documentDescID is the schema descriptor for id field.
	documentDescID := documentFields[0].Descriptor()
	// document.DefaultID holds the default value on creation for the id field.
	document.DefaultID = documentDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescCurrency is the schema descriptor for currency field.
	invoiceDescCurrency := invoiceFields[10].Descriptor()
	// invoice.DefaultCurrency holds the default value on creation for the currency field.
	invoice.DefaultCurrency = invoiceDescCurrency.Default.(string)
	// invoice.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	invoice.CurrencyValidator = invoiceDescCurrency.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[11].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[12].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicelineFields := schema.InvoiceLine{}.Fields()
	_ = invoicelineFields
	// invoicelineDescQuantity is the schema descriptor for quantity field.
	invoicelineDescQuantity := invoicelineFields[3].Descriptor()
	// invoiceline.DefaultQuantity holds the default value on creation for the quantity field.
	invoiceline.DefaultQuantity = invoicelineDescQuantity.Default.(float64)
	// invoicelineDescUnitPrice is the schema descriptor for unit_price field.
	invoicelineDescUnitPrice := invoicelineFields[4].Descriptor()
	// invoiceline.DefaultUnitPrice holds the default value on creation for the unit_price field.
	invoiceline.DefaultUnitPrice = invoicelineDescUnitPrice.Default.(float64)
	// invoicelineDescLineTotal is the schema descriptor for line_total field.
	invoicelineDescLineTotal := invoicelineFields[5].Descriptor()
	// invoiceline.DefaultLineTotal holds the default value on creation for the line_total field.
	invoiceline.DefaultLineTotal = invoicelineDescLineTotal.Default.(float64)
	// invoicelineDescID is the schema descriptor for id field.
	invoicelineDescID := invoicelineFields[0].Descriptor()
	// invoiceline.DefaultID holds the default value on creation for the id field.
	invoiceline.DefaultID = invoicelineDescID.Default.(func() uuid.UUID)
}
