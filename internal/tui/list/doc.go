// Package listview provides the scrolling row viewport used by the invoice table.
//
// The viewport renders only the rows that fit the terminal and keeps the cursor
// row visible. Key features:
//   - O(viewport_height) rendering regardless of how many rows are loaded
//   - Keyboard navigation (up/down, j/k, pgup/pgdn, home/end) and mouse wheel
//   - Row replacement without losing the cursor, for lists that grow while scrolling
//   - Scroll measurements (offset, content height, viewport height) in rows, so a
//     pager.Controller can decide when to load the next page
package listview
