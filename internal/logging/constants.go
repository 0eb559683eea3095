package logging

// Standardized field names for structured logging.
const (
	FieldSession     = "session_id"
	FieldOperation   = "operation"
	FieldCategory    = "category"
	FieldAmount      = "amount"
	FieldCurrency    = "currency"
	FieldProvider    = "provider"
	FieldModel       = "model"
	FieldCount       = "count"
	FieldTotal       = "total"
	FieldBudget      = "budget"
	FieldReason      = "reason"
	FieldDuration    = "duration_ms"
	FieldOutputFile  = "output_file"
	FieldConfigFile  = "config_file"
	FieldDescription = "description"
)
