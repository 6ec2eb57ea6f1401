// Package invoice defines the invoice data model and the synthetic dataset the
// dashboard renders.
//
// Datasets are generated once, in memory, and never mutated afterwards. The
// package also derives the aggregate figures shown on the dashboard (revenue,
// outstanding amounts, month-over-month change) and the recent activity feed.
package invoice
