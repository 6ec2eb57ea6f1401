// Package pager implements progressive list rendering over an in-memory dataset.
//
// A Controller owns a fully materialized, ordered dataset and exposes a window:
// the prefix of the dataset currently rendered. The window starts at one page and
// grows by one page each time the presentation layer reports a scroll position
// within the near-bottom threshold, until it covers the whole dataset. Key properties:
//   - The window is always a prefix of the dataset and never shrinks
//   - Page count is the single source of truth; the window slice is derived on read
//   - Each trigger advances exactly one page; the exhausted state is terminal
//   - At most one item is selected at a time, independent of the window
//
// The controller performs no debouncing and no I/O. Every operation is O(1) apart
// from selection lookups, so callers may forward scroll events at any rate.
package pager
