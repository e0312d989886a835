// Package menu provides the read-only menu catalog for the table-side ordering
// system.
//
// The package includes:
//   - MenuItem: An immutable record describing one orderable dish
//   - Tags: Guest-facing attributes (spicy, veg, popular) used for presentation
//   - Catalog: A lookup over loaded items with category navigation
//
// Key business rules:
//   - Items are never mutated by the order flow; orders copy name and price at add-time
//   - An empty or malformed menu source is a blocking error, never an empty menu
//   - Category listings preserve the original relative order of items
package menu
