package constants

import "strings"

// DocumentCategory is the semantic category assigned to a document,
// either by the uploader or by the classification step.
type DocumentCategory string

// Stable values (store these exact strings in DB).
const (
	CategoryGeneral  DocumentCategory = "general"
	CategoryInvoice  DocumentCategory = "invoice"
	CategoryContract DocumentCategory = "contract"
)

var allCategories = []DocumentCategory{
	CategoryGeneral,
	CategoryInvoice,
	CategoryContract,
}

func CategoryStrings() []string {
	result := make([]string, len(allCategories))
	for i, cat := range allCategories {
		result[i] = string(cat)
	}
	return result
}

// ParseCategory maps free-form input to a known category. The second
// return reports whether the input named a recognized category; callers
// that receive false get CategoryGeneral (fail-open).
func ParseCategory(input string) (DocumentCategory, bool) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, cat := range allCategories {
		if normalized == string(cat) {
			return cat, true
		}
	}
	return CategoryGeneral, false
}

// NeedsClassification reports whether the classification step should run
// for a document currently carrying this category. Documents already
// classified as invoice or contract are never reclassified.
func (c DocumentCategory) NeedsClassification() bool {
	return c == "" || c == CategoryGeneral
}
