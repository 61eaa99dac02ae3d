package classify

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extensionAST "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/tsawler/folio/model"
)

// classifyMarkdown parses GFM and flattens the document tree into
// layout elements. Inline structure the engine cannot use (emphasis,
// links) collapses to its text; block structure maps one to one.
func classifyMarkdown(content string, gen *idGen) []model.Element {
	md := []byte(content)
	mdParser := goldmark.New(goldmark.WithExtensions(extension.GFM))
	doc := mdParser.Parser().Parse(text.NewReader(md))

	var elements []model.Element
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch nd := n.(type) {
		case *ast.Heading:
			if txt := inlineText(nd, md); txt != "" {
				elements = append(elements, &model.Heading{
					ElementID: gen.id(),
					Content:   txt,
					Level:     nd.Level,
				})
			}
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			if img := soleImage(nd, md); img != nil {
				elements = append(elements, imageElement(img, md, gen))
				return ast.WalkSkipChildren, nil
			}
			if txt := inlineText(nd, md); txt != "" {
				elements = append(elements, mathElement(txt, gen))
			}
			return ast.WalkSkipChildren, nil

		case *ast.List:
			items := collectListItems(nd, md, 0)
			if len(items) > 0 {
				elements = append(elements, &model.List{
					ElementID: gen.id(),
					Items:     items,
					Ordered:   nd.IsOrdered(),
				})
			}
			return ast.WalkSkipChildren, nil

		case *extensionAST.Table:
			if table := tableElement(nd, md, gen); table != nil {
				elements = append(elements, table)
			}
			return ast.WalkSkipChildren, nil

		case *ast.FencedCodeBlock:
			elements = append(elements, &model.Code{
				ElementID: gen.id(),
				Lines:     blockLines(nd, md),
				Language:  string(nd.Language(md)),
			})
			return ast.WalkSkipChildren, nil

		case *ast.CodeBlock:
			elements = append(elements, &model.Code{
				ElementID: gen.id(),
				Lines:     blockLines(nd, md),
			})
			return ast.WalkSkipChildren, nil

		case *ast.Blockquote:
			if txt := blockText(nd, md); txt != "" {
				elements = append(elements, &model.Text{
					ElementID: gen.id(),
					Content:   txt,
				})
			}
			return ast.WalkSkipChildren, nil

		case *ast.ThematicBreak:
			return ast.WalkSkipChildren, nil

		default:
			return ast.WalkContinue, nil
		}
	})
	return elements
}

// inlineText flattens a node's inline children to plain text. Soft
// line breaks become spaces; line decisions belong to the layout
// engine, not the source.
func inlineText(node ast.Node, md []byte) string {
	var sb strings.Builder
	collectInlineText(node, md, &sb)
	return strings.TrimSpace(sb.String())
}

func collectInlineText(node ast.Node, md []byte, sb *strings.Builder) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch c := child.(type) {
		case *ast.Text:
			sb.Write(c.Segment.Value(md))
			if c.SoftLineBreak() || c.HardLineBreak() {
				sb.WriteString(" ")
			}
		case *ast.CodeSpan:
			for g := c.FirstChild(); g != nil; g = g.NextSibling() {
				if t, ok := g.(*ast.Text); ok {
					sb.Write(t.Segment.Value(md))
				}
			}
		case *ast.AutoLink:
			if label := c.Label(md); len(label) > 0 {
				sb.Write(label)
			} else {
				sb.Write(c.URL(md))
			}
		case *ast.Image:
			collectInlineText(c, md, sb)
		default:
			if child.HasChildren() {
				collectInlineText(child, md, sb)
			}
		}
	}
}

// blockText flattens a container of paragraphs, keeping the paragraph
// boundaries the layout engine splits on.
func blockText(node ast.Node, md []byte) string {
	var paras []string
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if txt := inlineText(child, md); txt != "" {
			paras = append(paras, txt)
		}
	}
	return strings.Join(paras, "\n\n")
}

// blockLines returns a code block's source lines without trailing
// newlines.
func blockLines(node ast.Node, md []byte) []string {
	segments := node.Lines()
	lines := make([]string, 0, segments.Len())
	for i := 0; i < segments.Len(); i++ {
		seg := segments.At(i)
		lines = append(lines, strings.TrimRight(string(seg.Value(md)), "\n"))
	}
	return lines
}

// soleImage returns the paragraph's image when the paragraph holds
// nothing else, so a standalone figure becomes an image element rather
// than alt text.
func soleImage(p ast.Node, md []byte) *ast.Image {
	var img *ast.Image
	for c := p.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Image:
			if img != nil {
				return nil
			}
			img = t
		case *ast.Text:
			if strings.TrimSpace(string(t.Segment.Value(md))) != "" {
				return nil
			}
		default:
			return nil
		}
	}
	return img
}

func imageElement(img *ast.Image, md []byte, gen *idGen) *model.Image {
	el := &model.Image{
		ElementID: gen.id(),
		Source:    string(img.Destination),
		Alt:       inlineText(img, md),
	}
	if w, h, err := DataURISize(el.Source); err == nil {
		el.NaturalWidth = float64(w)
		el.NaturalHeight = float64(h)
	}
	return el
}

func collectListItems(list *ast.List, md []byte, level int) []model.ListItem {
	var items []model.ListItem
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		li, ok := item.(*ast.ListItem)
		if !ok {
			continue
		}

		var texts []string
		for child := li.FirstChild(); child != nil; child = child.NextSibling() {
			if _, ok := child.(*ast.List); ok {
				continue // nested lists flatten in after the item text
			}
			if txt := inlineText(child, md); txt != "" {
				texts = append(texts, txt)
			}
		}
		if len(texts) > 0 {
			items = append(items, model.ListItem{
				Text:  strings.Join(texts, " "),
				Level: level,
			})
		}

		for child := li.FirstChild(); child != nil; child = child.NextSibling() {
			if nested, ok := child.(*ast.List); ok {
				items = append(items, collectListItems(nested, md, level+1)...)
			}
		}
	}
	return items
}

func tableElement(tbl *extensionAST.Table, md []byte, gen *idGen) *model.Table {
	table := &model.Table{ElementID: gen.id()}

	for node := tbl.FirstChild(); node != nil; node = node.NextSibling() {
		switch n := node.(type) {
		case *extensionAST.TableHeader:
			for child := n.FirstChild(); child != nil; child = child.NextSibling() {
				if row, ok := child.(*extensionAST.TableRow); ok {
					table.Header = tableRowCells(row, md)
				}
			}
			// goldmark can also parent cells directly under the header
			if table.Header == nil {
				table.Header = tableRowCells(n, md)
			}
		case *extensionAST.TableRow:
			table.Rows = append(table.Rows, tableRowCells(n, md))
		}
	}

	if len(table.Header) == 0 && len(table.Rows) == 0 {
		return nil
	}
	return table
}

func tableRowCells(row ast.Node, md []byte) []string {
	var cells []string
	for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
		if _, ok := cell.(*extensionAST.TableCell); !ok {
			continue
		}
		cells = append(cells, inlineText(cell, md))
	}
	return cells
}

// mathElement wraps paragraph text as latex when it carries math
// delimiters: a paragraph that is entirely $$...$$ becomes a display
// math element, inline $...$ runs become marked segments.
func mathElement(txt string, gen *idGen) model.Element {
	trimmed := strings.TrimSpace(txt)
	if strings.HasPrefix(trimmed, "$$") && strings.HasSuffix(trimmed, "$$") && len(trimmed) > 4 {
		return &model.Latex{
			ElementID: gen.id(),
			Content:   strings.TrimSpace(trimmed[2 : len(trimmed)-2]),
		}
	}

	if spans := mathSpans(txt); len(spans) > 0 {
		return &model.Latex{
			ElementID: gen.id(),
			Content:   txt,
			Style:     model.Style{LatexSegments: spans},
		}
	}

	return &model.Text{ElementID: gen.id(), Content: txt}
}

// mathSpans finds inline $...$ runs. Delimiters hugging their content
// ($x$ yes, $ 5 $ no) keep dollar amounts in prose from reading as
// math.
func mathSpans(s string) []model.LatexSpan {
	var spans []model.LatexSpan
	i := 0
	for i < len(s) {
		if s[i] != '$' {
			i++
			continue
		}

		j := i + 1
		for j < len(s) && s[j] != '$' {
			j++
		}
		if j >= len(s) {
			break
		}

		inner := s[i+1 : j]
		if inner == "" || strings.HasPrefix(inner, " ") || strings.HasSuffix(inner, " ") || strings.Contains(inner, "\n") {
			i = j
			continue
		}

		spans = append(spans, model.LatexSpan{Start: i, End: j + 1})
		i = j + 1
	}
	return spans
}
