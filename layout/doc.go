// Package layout measures elements and flows them onto pages.
//
// The engine has three cooperating parts. [DimensionCalculator] turns
// an element plus an available width into concrete dimensions and
// split hints. [ElementSplitter] divides an element at a content-aware
// boundary: paragraphs for text and headings, source lines for code,
// rows for tables, whole items for lists. [Paginator] drives both,
// walking the element sequence and deciding per element whether to
// place it in the remaining space, split it across the break, or move
// it whole to a fresh page.
//
// # Flow Rules
//
// An element that fits in the remaining vertical space is placed at
// the cursor. One that does not fit but can split is divided so the
// first part fills the current page and the remainder reflows on the
// next, with [model.SplitInfo] linking the parts. An element that
// cannot split, or whose split was refused, moves whole to a fresh
// page. If even an empty page cannot hold it, the element is placed
// anyway with Overflow set and a [model.Warning] recorded; layout
// never fails mid-pass.
//
// Orphan and widow control bounds every split: the part left on the
// current page keeps at least Config.OrphanLines lines, and the line
// budget reserves Config.WidowLines lines for the continuation. Splits
// that cannot honor both are refused.
//
// # Measurement
//
// Text measurement is estimation, not shaping: an average character
// width per font family drives a greedy word wrap. Supplying a
// [font.Measurer] backed by real font metrics tightens the estimate
// without changing any layout rule.
package layout
