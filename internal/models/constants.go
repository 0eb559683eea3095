package models

// Fixed labels offered to the text classifier. The order is the order in
// which candidate labels are presented to classifiers.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryUtilities     = "Utilities"
	CategoryEntertainment = "Entertainment"
	CategoryShopping      = "Shopping"
	CategoryHealthcare    = "Healthcare"
	CategoryOthers        = "Others"
)

// DefaultCategory is used whenever classification fails or yields nothing.
const DefaultCategory = CategoryOthers

// ManualDescriptionPrefix prefixes the synthesized description of manual entries.
const ManualDescriptionPrefix = "Manual: "

// Expense sources
const (
	SourceManual = "manual"
	SourceText   = "ai"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// CategoryLabels returns the fixed classifier label set. A fresh slice is
// returned on every call.
func CategoryLabels() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryUtilities,
		CategoryEntertainment,
		CategoryShopping,
		CategoryHealthcare,
		CategoryOthers,
	}
}

// IsCategoryLabel reports whether name is one of the fixed labels (exact match).
func IsCategoryLabel(name string) bool {
	for _, label := range CategoryLabels() {
		if label == name {
			return true
		}
	}
	return false
}
