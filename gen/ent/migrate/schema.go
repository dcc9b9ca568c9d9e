// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// HouseholdsColumns holds the columns for the "households" table.
	HouseholdsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// HouseholdsTable holds the schema information for the "households" table.
	HouseholdsTable = &schema.Table{
		Name:       "households",
		Columns:    HouseholdsColumns,
		PrimaryKey: []*schema.Column{HouseholdsColumns[0]},
	}
	// ParseJobColumns holds the columns for the "parse_job" table.
	ParseJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "ocr_payload", Type: field.TypeJSON, Nullable: true},
		{Name: "item_count", Type: field.TypeInt, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "household_id", Type: field.TypeUUID},
		{Name: "receipt_id", Type: field.TypeUUID, Nullable: true},
	}
	// ParseJobTable holds the schema information for the "parse_job" table.
	ParseJobTable = &schema.Table{
		Name:       "parse_job",
		Columns:    ParseJobColumns,
		PrimaryKey: []*schema.Column{ParseJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "parse_job_households_jobs",
				Columns:    []*schema.Column{ParseJobColumns[10]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "parse_job_receipts_jobs",
				Columns:    []*schema.Column{ParseJobColumns[11]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "parsejob_household_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[10], ParseJobColumns[3], ParseJobColumns[1]},
			},
			{
				Name:    "parsejob_receipt_id",
				Unique:  false,
				Columns: []*schema.Column{ParseJobColumns[11]},
			},
		},
	}
	// ReceiptsColumns holds the columns for the "receipts" table.
	ReceiptsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "merchant_name", Type: field.TypeString, Nullable: true},
		{Name: "receipt_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "total_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "calculated_total", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_matches", Type: field.TypeBool, Default: false},
		{Name: "verification", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "household_id", Type: field.TypeUUID},
	}
	// ReceiptsTable holds the schema information for the "receipts" table.
	ReceiptsTable = &schema.Table{
		Name:       "receipts",
		Columns:    ReceiptsColumns,
		PrimaryKey: []*schema.Column{ReceiptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipts_households_receipts",
				Columns:    []*schema.Column{ReceiptsColumns[9]},
				RefColumns: []*schema.Column{HouseholdsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receipt_household_id_receipt_date",
				Unique:  false,
				Columns: []*schema.Column{ReceiptsColumns[9], ReceiptsColumns[2]},
			},
		},
	}
	// ReceiptItemsColumns holds the columns for the "receipt_items" table.
	ReceiptItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_price", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_number", Type: field.TypeInt},
		{Name: "confidence", Type: field.TypeFloat64},
		{Name: "receipt_id", Type: field.TypeUUID},
	}
	// ReceiptItemsTable holds the schema information for the "receipt_items" table.
	ReceiptItemsTable = &schema.Table{
		Name:       "receipt_items",
		Columns:    ReceiptItemsColumns,
		PrimaryKey: []*schema.Column{ReceiptItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "receipt_items_receipts_items",
				Columns:    []*schema.Column{ReceiptItemsColumns[7]},
				RefColumns: []*schema.Column{ReceiptsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "receiptitem_receipt_id_line_number",
				Unique:  false,
				Columns: []*schema.Column{ReceiptItemsColumns[7], ReceiptItemsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		HouseholdsTable,
		ParseJobTable,
		ReceiptsTable,
		ReceiptItemsTable,
	}
)

func init() {
	HouseholdsTable.Annotation = &entsql.Annotation{
		Table: "households",
	}
	ParseJobTable.ForeignKeys[0].RefTable = HouseholdsTable
	ParseJobTable.ForeignKeys[1].RefTable = ReceiptsTable
	ParseJobTable.Annotation = &entsql.Annotation{
		Table: "parse_job",
	}
	ReceiptsTable.ForeignKeys[0].RefTable = HouseholdsTable
	ReceiptsTable.Annotation = &entsql.Annotation{
		Table: "receipts",
	}
	ReceiptItemsTable.ForeignKeys[0].RefTable = ReceiptsTable
	ReceiptItemsTable.Annotation = &entsql.Annotation{
		Table: "receipt_items",
	}
}
