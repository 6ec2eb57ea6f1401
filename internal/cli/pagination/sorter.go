package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/findash/internal/invoice"
)

// Sorter defines the interface for sorting list results.
type Sorter[T any] interface {
	// Sort returns a sorted copy of items by the specified field and order.
	Sort(items []T, field, order string) []T
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns a list of valid field names for sorting.
	GetValidFields() []string
}

// invoiceLess compares two invoices on one field.
type invoiceLess func(a, b invoice.Invoice) bool

// InvoiceSorter implements Sorter for invoice.Invoice.
type InvoiceSorter struct {
	fields map[string]invoiceLess
}

var _ Sorter[invoice.Invoice] = (*InvoiceSorter)(nil)

// NewInvoiceSorter creates a new InvoiceSorter with valid sort fields.
func NewInvoiceSorter() *InvoiceSorter {
	return &InvoiceSorter{
		fields: map[string]invoiceLess{
			"number":  func(a, b invoice.Invoice) bool { return a.Number < b.Number },
			"client":  func(a, b invoice.Invoice) bool { return a.Client < b.Client },
			"amount":  func(a, b invoice.Invoice) bool { return a.Amount < b.Amount },
			"status":  func(a, b invoice.Invoice) bool { return a.Status < b.Status },
			"date":    func(a, b invoice.Invoice) bool { return a.IssueDate.Before(b.IssueDate) },
			"dueDate": func(a, b invoice.Invoice) bool { return a.DueDate.Before(b.DueDate) },
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *InvoiceSorter) IsValidField(field string) bool {
	_, ok := s.fields[field]
	return ok
}

// GetValidFields returns all valid sort fields.
func (s *InvoiceSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.fields))
	for field := range s.fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Sort sorts invoices by the specified field and order.
// Returns a new sorted slice; does not modify the original.
// If field is invalid, returns the original slice unchanged.
func (s *InvoiceSorter) Sort(items []invoice.Invoice, field, order string) []invoice.Invoice {
	less, ok := s.fields[field]
	if !ok {
		return items
	}

	sorted := make([]invoice.Invoice, len(items))
	copy(sorted, items)

	sort.SliceStable(sorted, func(i, j int) bool {
		// For descending order, swap i and j in comparisons to maintain stability
		if order == SortOrderDesc {
			i, j = j, i
		}
		return less(sorted[i], sorted[j])
	})
	return sorted
}

// SortBy parses expr and sorts items with sorter. An empty expression keeps the input order.
func SortBy[T any](sorter Sorter[T], items []T, expr string) ([]T, error) {
	if strings.TrimSpace(expr) == "" {
		return items, nil
	}
	field, order, err := ParseSort(expr)
	if err != nil {
		return nil, err
	}
	if !sorter.IsValidField(field) {
		return nil, fmt.Errorf("%w: %q (valid fields: %s)",
			ErrInvalidSortField, field, strings.Join(sorter.GetValidFields(), ", "))
	}
	return sorter.Sort(items, field, order), nil
}
