package logging

// Standardized field names for structured logging. Keeping these in one
// place keeps log output consistent and filterable.
const (
	FieldFile      = "file_path"
	FieldBank      = "bank_code"
	FieldFitID     = "fitid"
	FieldRefNum    = "refnum"
	FieldIdentity  = "import_identity"
	FieldReason    = "reason"
	FieldCount     = "count"
	FieldAmount    = "amount"
	FieldDate      = "date"
	FieldMonth     = "month"
	FieldYear      = "year"
	FieldAccount   = "account_id"
	FieldEntry     = "entry_id"
	FieldBatch     = "batch_id"
	FieldComponent = "component"
)
