// Package model provides the data types shared by the folio layout engine.
//
// This package defines the element model consumed by the paginator, the
// geometry primitives used for placement, and the result types produced by
// a layout pass. Elements are immutable once created; the engine computes
// placements without modifying its input.
//
// # Elements
//
// All content implements the [Element] interface. The concrete types are:
//
//   - [Text] - paragraph-flow text
//   - [Heading] - headings (levels 1-6)
//   - [Code] - preformatted code blocks
//   - [Table] - tabular content
//   - [Image] - images placed by natural size
//   - [Latex] - text containing mathematical notation
//   - [List] - ordered or unordered lists
//
// Per-element typography is carried by [Style]; zero style fields fall back
// to engine configuration defaults at measurement time.
//
// # Geometry
//
// Geometric primitives support placement calculations:
//
//   - [BBox] - bounding box; Y grows downward from the page top
//   - [Point] - 2D point with distance calculation
//   - [PageSize] - page dimensions, with standard sizes like [A4]
//   - [Margins] - page margins
//
// # Layout Results
//
// A layout pass produces a [LayoutResult]: pages of [PlacedElement] values
// plus any [Warning] records. A placed element carries its final bounds,
// page index, and - when the element was divided across pages - a
// [SplitInfo] describing the part.
package model
