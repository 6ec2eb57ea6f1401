package pagination

import (
	"errors"
	"fmt"
	"strings"
)

// Sort orders. An empty sort field keeps dataset order.
const (
	DefaultOffset    = 0
	DefaultSortField = ""
	SortOrderAsc     = "asc"
	SortOrderDesc    = "desc"
	DefaultSortOrder = SortOrderAsc
)

// Validation errors. Callers match them with errors.Is.
var (
	ErrNegativeValue        = errors.New("pagination values cannot be negative")
	ErrMixedPaginationModes = errors.New("page and offset parameters are mutually exclusive")
	ErrPageWithoutSize      = errors.New("page-size must be specified when using page")
	ErrSizeWithoutPage      = errors.New("page must be specified when using page-size")
	ErrInvalidSortOrder     = errors.New("sort order must be 'asc' or 'desc'")
	ErrInvalidSortFormat    = errors.New("invalid sort format: use 'field' or 'field:order' (e.g., 'amount:desc')")
	ErrEmptySortField       = errors.New("sort field cannot be empty")
	ErrInvalidSortField     = errors.New("invalid sort field")
)

// PaginationParams holds the pagination flags of a list command. Two modes
// exist and cannot be combined: --limit/--offset and --page/--page-size.
// Limit also narrows a page when both are given.
//
//nolint:revive // PaginationParams is the canonical name for this exported type.
type PaginationParams struct {
	Limit    int // 0 = unlimited
	Offset   int
	Page     int // 1-based
	PageSize int
}

// Validate reports the first inconsistency in p.
func (p PaginationParams) Validate() error {
	for _, f := range []struct {
		flag  string
		value int
	}{
		{"limit", p.Limit},
		{"offset", p.Offset},
		{"page", p.Page},
		{"page-size", p.PageSize},
	} {
		if f.value < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeValue, f.flag, f.value)
		}
	}

	switch {
	case p.Page > 0 && p.Offset > 0:
		return ErrMixedPaginationModes
	case p.PageSize > 0 && p.Page == 0:
		return ErrSizeWithoutPage
	case p.Page > 0 && p.PageSize == 0:
		return ErrPageWithoutSize
	}
	return nil
}

// ParseSort splits a "field" or "field:order" expression such as
// "amount", "dueDate:desc" or "client:ASC". The order is lower-cased.
func ParseSort(expr string) (string, string, error) {
	if strings.TrimSpace(expr) == "" {
		return DefaultSortField, DefaultSortOrder, nil
	}

	field, order, hasOrder := strings.Cut(expr, ":")
	field = strings.TrimSpace(field)
	order = strings.ToLower(strings.TrimSpace(order))
	if !hasOrder {
		order = DefaultSortOrder
	}

	switch {
	case strings.Contains(order, ":"):
		return "", "", fmt.Errorf("%w: %q", ErrInvalidSortFormat, expr)
	case field == "":
		return "", "", ErrEmptySortField
	case order != SortOrderAsc && order != SortOrderDesc:
		return "", "", fmt.Errorf("%w: got %q", ErrInvalidSortOrder, order)
	}
	return field, order, nil
}

// IsPageBased reports whether --page was given.
func (p PaginationParams) IsPageBased() bool {
	return p.Page > 0
}

// IsEnabled reports whether any pagination flag was given.
func (p PaginationParams) IsEnabled() bool {
	return p.Limit > 0 || p.Offset > 0 || p.Page > 0 || p.PageSize > 0
}

// CalculateOffsetLimit converts either mode into an offset and a limit.
func (p PaginationParams) CalculateOffsetLimit() (int, int) {
	if !p.IsPageBased() {
		return p.Offset, p.Limit
	}
	limit := p.PageSize
	if p.Limit > 0 {
		limit = min(limit, p.Limit)
	}
	return (p.Page - 1) * p.PageSize, limit
}

// CalculateTotalPages returns the number of pages needed for totalResults
// items, or 0 outside page-based mode.
func (p PaginationParams) CalculateTotalPages(totalResults int) int {
	if !p.IsPageBased() || totalResults == 0 {
		return 0
	}
	return (totalResults + p.PageSize - 1) / p.PageSize
}

// ApplyToSlice returns the part of items selected by p. A page past the end
// is served as the last page. The result shares the backing array of items.
func ApplyToSlice[T any](p PaginationParams, items []T) []T {
	n := len(items)
	if n == 0 {
		return items
	}

	offset, limit := p.CalculateOffsetLimit()
	if p.IsPageBased() && offset >= n {
		offset = (n - 1) / p.PageSize * p.PageSize
	}
	if offset >= n {
		return items[:0]
	}

	end := n
	if limit > 0 {
		end = min(offset+limit, n)
	}
	return items[offset:end]
}
