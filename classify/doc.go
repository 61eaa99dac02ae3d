// Package classify turns raw document content into layout elements.
//
// Input may be Markdown, HTML or plain text. [DetectFormat] sniffs
// which, and [Classify] dispatches to a format-specific parser that
// emits a flat, ordered slice of [model.Element] values ready for
// measurement and pagination:
//
//	elements := classify.Classify(content)
//
// Markdown is parsed with goldmark (GitHub Flavored), HTML with
// golang.org/x/net/html. Plain text splits on blank lines. All three
// parsers assign sequential element IDs and apply the same inline math
// detection, so downstream layout never cares which format the content
// arrived in.
package classify
