// Package pagination provides utilities for CLI pagination, sorting, and result formatting.
//
// This package contains the pagination logic used by list commands, including:
//   - PaginationParams: CLI flag validation and slicing
//   - PaginationMeta: Response metadata for paginated results
//   - Sorter: Sorting interface with field validation, implemented for invoices
//
// It is independent of the dashboard's scroll-driven window: a CLI page is an
// explicit slice of the dataset, not a growing prefix.
package pagination
