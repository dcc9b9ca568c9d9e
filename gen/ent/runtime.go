// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/splithouse/receipts-engine/db/ent/schema"
	"github.com/splithouse/receipts-engine/gen/ent/household"
	"github.com/splithouse/receipts-engine/gen/ent/parsejob"
	"github.com/splithouse/receipts-engine/gen/ent/receipt"
	"github.com/splithouse/receipts-engine/gen/ent/receiptitem"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	householdFields := schema.Household{}.Fields()
	_ = householdFields
	// householdDescName is the schema descriptor for name field.
	householdDescName := householdFields[1].Descriptor()
	// household.NameValidator is a validator for the "name" field. It is called by the builders before save.
	household.NameValidator = householdDescName.Validators[0].(func(string) error)
	// householdDescCurrency is the schema descriptor for currency field.
	householdDescCurrency := householdFields[2].Descriptor()
	// household.CurrencyValidator is a validator for the "currency" field. It is called by the builders before save.
	household.CurrencyValidator = func() func(string) error {
		validators := householdDescCurrency.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency string) error {
			for _, fn := range fns {
				if err := fn(currency); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// householdDescCreatedAt is the schema descriptor for created_at field.
	householdDescCreatedAt := householdFields[3].Descriptor()
	// household.DefaultCreatedAt holds the default value on creation for the created_at field.
	household.DefaultCreatedAt = householdDescCreatedAt.Default.(func() time.Time)
	// householdDescUpdatedAt is the schema descriptor for updated_at field.
	householdDescUpdatedAt := householdFields[4].Descriptor()
	// household.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	household.DefaultUpdatedAt = householdDescUpdatedAt.Default.(func() time.Time)
	// household.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	household.UpdateDefaultUpdatedAt = householdDescUpdatedAt.UpdateDefault.(func() time.Time)
	// householdDescID is the schema descriptor for id field.
	householdDescID := householdFields[0].Descriptor()
	// household.DefaultID holds the default value on creation for the id field.
	household.DefaultID = householdDescID.Default.(func() uuid.UUID)
	parsejobFields := schema.ParseJob{}.Fields()
	_ = parsejobFields
	// parsejobDescStartedAt is the schema descriptor for started_at field.
	parsejobDescStartedAt := parsejobFields[3].Descriptor()
	// parsejob.DefaultStartedAt holds the default value on creation for the started_at field.
	parsejob.DefaultStartedAt = parsejobDescStartedAt.Default.(func() time.Time)
	// parsejobDescNeedsReview is the schema descriptor for needs_review field.
	parsejobDescNeedsReview := parsejobFields[10].Descriptor()
	// parsejob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	parsejob.DefaultNeedsReview = parsejobDescNeedsReview.Default.(bool)
	// parsejobDescID is the schema descriptor for id field.
	parsejobDescID := parsejobFields[0].Descriptor()
	// parsejob.DefaultID holds the default value on creation for the id field.
	parsejob.DefaultID = parsejobDescID.Default.(func() uuid.UUID)
	receiptFields := schema.Receipt{}.Fields()
	_ = receiptFields
	// receiptDescTotalMatches is the schema descriptor for total_matches field.
	receiptDescTotalMatches := receiptFields[6].Descriptor()
	// receipt.DefaultTotalMatches holds the default value on creation for the total_matches field.
	receipt.DefaultTotalMatches = receiptDescTotalMatches.Default.(bool)
	// receiptDescCreatedAt is the schema descriptor for created_at field.
	receiptDescCreatedAt := receiptFields[8].Descriptor()
	// receipt.DefaultCreatedAt holds the default value on creation for the created_at field.
	receipt.DefaultCreatedAt = receiptDescCreatedAt.Default.(func() time.Time)
	// receiptDescUpdatedAt is the schema descriptor for updated_at field.
	receiptDescUpdatedAt := receiptFields[9].Descriptor()
	// receipt.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	receipt.DefaultUpdatedAt = receiptDescUpdatedAt.Default.(func() time.Time)
	// receipt.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	receipt.UpdateDefaultUpdatedAt = receiptDescUpdatedAt.UpdateDefault.(func() time.Time)
	// receiptDescID is the schema descriptor for id field.
	receiptDescID := receiptFields[0].Descriptor()
	// receipt.DefaultID holds the default value on creation for the id field.
	receipt.DefaultID = receiptDescID.Default.(func() uuid.UUID)
	receiptitemFields := schema.ReceiptItem{}.Fields()
	_ = receiptitemFields
	// receiptitemDescName is the schema descriptor for name field.
	receiptitemDescName := receiptitemFields[2].Descriptor()
	// receiptitem.NameValidator is a validator for the "name" field. It is called by the builders before save.
	receiptitem.NameValidator = receiptitemDescName.Validators[0].(func(string) error)
	// receiptitemDescQuantity is the schema descriptor for quantity field.
	receiptitemDescQuantity := receiptitemFields[3].Descriptor()
	// receiptitem.DefaultQuantity holds the default value on creation for the quantity field.
	receiptitem.DefaultQuantity = receiptitemDescQuantity.Default.(int)
	// receiptitem.QuantityValidator is a validator for the "quantity" field. It is called by the builders before save.
	receiptitem.QuantityValidator = receiptitemDescQuantity.Validators[0].(func(int) error)
	// receiptitemDescTotalPrice is the schema descriptor for total_price field.
	receiptitemDescTotalPrice := receiptitemFields[5].Descriptor()
	// receiptitem.TotalPriceValidator is a validator for the "total_price" field. It is called by the builders before save.
	receiptitem.TotalPriceValidator = receiptitemDescTotalPrice.Validators[0].(func(float64) error)
	// receiptitemDescLineNumber is the schema descriptor for line_number field.
	receiptitemDescLineNumber := receiptitemFields[6].Descriptor()
	// receiptitem.LineNumberValidator is a validator for the "line_number" field. It is called by the builders before save.
	receiptitem.LineNumberValidator = receiptitemDescLineNumber.Validators[0].(func(int) error)
	// receiptitemDescConfidence is the schema descriptor for confidence field.
	receiptitemDescConfidence := receiptitemFields[7].Descriptor()
	// receiptitem.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	receiptitem.ConfidenceValidator = func() func(float64) error {
		validators := receiptitemDescConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(confidence float64) error {
			for _, fn := range fns {
				if err := fn(confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// receiptitemDescID is the schema descriptor for id field.
	receiptitemDescID := receiptitemFields[0].Descriptor()
	// receiptitem.DefaultID holds the default value on creation for the id field.
	receiptitem.DefaultID = receiptitemDescID.Default.(func() uuid.UUID)
}
