package classify

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/folio/model"
)

// classifyHTML parses the document and flattens its body into layout
// elements. Non-content elements (scripts, styles, inline SVG) are
// dropped; inline markup collapses to its text.
func classifyHTML(content string, gen *idGen) []model.Element {
	doc, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return classifyText(content, gen)
	}

	body := findNode(doc, "body")
	if body == nil {
		body = doc
	}

	c := &htmlCollector{gen: gen}
	c.traverse(body)
	c.flushList()
	return c.elements
}

// htmlCollector accumulates elements while walking the DOM. List state
// lives here because items arrive one <li> at a time but emit as one
// element.
type htmlCollector struct {
	gen         *idGen
	elements    []model.Element
	listItems   []model.ListItem
	listOrdered bool
	listLevel   int
	inList      bool
}

func (c *htmlCollector) flushList() {
	if len(c.listItems) > 0 {
		c.elements = append(c.elements, &model.List{
			ElementID: c.gen.id(),
			Items:     c.listItems,
			Ordered:   c.listOrdered,
		})
	}
	c.listItems = nil
	c.inList = false
}

func (c *htmlCollector) traverse(n *html.Node) {
	if n.Type == html.ElementNode {
		if skipHTMLElement(n.Data) {
			return
		}

		switch n.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			c.flushList()
			if txt := textContent(n); txt != "" {
				c.elements = append(c.elements, &model.Heading{
					ElementID: c.gen.id(),
					Content:   txt,
					Level:     int(n.Data[1] - '0'),
				})
			}
			return

		case "p":
			c.flushList()
			if img := findNode(n, "img"); img != nil && textContent(n) == "" {
				c.addImage(img)
				return
			}
			if txt := textContent(n); txt != "" {
				c.elements = append(c.elements, mathElement(txt, c.gen))
			}
			return

		case "div":
			if txt := textContent(n); txt != "" && !hasBlockChildren(n) {
				c.elements = append(c.elements, mathElement(txt, c.gen))
				return
			}
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.traverse(child)
			}
			return

		case "ul", "ol":
			if c.inList {
				for child := n.FirstChild; child != nil; child = child.NextSibling {
					c.traverse(child)
				}
				return
			}
			c.inList = true
			c.listOrdered = n.Data == "ol"
			c.listLevel = 0
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				c.traverse(child)
			}
			c.flushList()
			return

		case "li":
			if !c.inList {
				return
			}
			if txt := directTextContent(n); txt != "" {
				c.listItems = append(c.listItems, model.ListItem{
					Text:  txt,
					Level: c.listLevel,
				})
			}
			c.listLevel++
			for child := n.FirstChild; child != nil; child = child.NextSibling {
				if child.Type == html.ElementNode && (child.Data == "ul" || child.Data == "ol") {
					c.traverse(child)
				}
			}
			c.listLevel--
			return

		case "table":
			c.flushList()
			if table := tableFromNode(n, c.gen); table != nil {
				c.elements = append(c.elements, table)
			}
			return

		case "pre":
			c.flushList()
			if code := codeFromNode(n, c.gen); code != nil {
				c.elements = append(c.elements, code)
			}
			return

		case "blockquote":
			c.flushList()
			if txt := textContent(n); txt != "" {
				c.elements = append(c.elements, &model.Text{
					ElementID: c.gen.id(),
					Content:   txt,
				})
			}
			return

		case "img":
			c.flushList()
			c.addImage(n)
			return

		case "br", "hr":
			return
		}
	}

	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.traverse(child)
	}
}

func (c *htmlCollector) addImage(n *html.Node) {
	img := &model.Image{ElementID: c.gen.id()}
	for _, attr := range n.Attr {
		switch attr.Key {
		case "src":
			img.Source = attr.Val
		case "alt":
			img.Alt = attr.Val
		case "width":
			if v, err := strconv.ParseFloat(attr.Val, 64); err == nil {
				img.NaturalWidth = v
			}
		case "height":
			if v, err := strconv.ParseFloat(attr.Val, 64); err == nil {
				img.NaturalHeight = v
			}
		}
	}
	if img.Source == "" {
		return
	}
	if img.NaturalWidth == 0 || img.NaturalHeight == 0 {
		if w, h, err := DataURISize(img.Source); err == nil {
			img.NaturalWidth = float64(w)
			img.NaturalHeight = float64(h)
		}
	}
	c.elements = append(c.elements, img)
}

// spannedCell is one <th>/<td> with its declared grid extent.
type spannedCell struct {
	text    string
	rowSpan int
	colSpan int
}

// tableFromNode builds a table from <tr> rows wherever they sit:
// direct children, thead, tbody or tfoot. A row of <th> cells, or any
// row inside <thead>, becomes the header. Spanned cells expand to
// empty-padded grid positions so every row reports the columns it
// actually occupies.
func tableFromNode(n *html.Node, gen *idGen) *model.Table {
	table := &model.Table{ElementID: gen.id()}

	// pending[i] counts later rows still covered by a rowspan in
	// logical column i.
	var pending []int

	covered := func(col int) bool {
		return col < len(pending) && pending[col] > 0
	}
	claim := func(col, extraRows int) {
		for len(pending) <= col {
			pending = append(pending, 0)
		}
		pending[col] = extraRows
	}

	// flatten places a row's cells on the logical grid: columns held
	// by rowspans from earlier rows get an empty cell, and a colspan
	// pads its extra columns with empty cells.
	flatten := func(cells []spannedCell) []string {
		var out []string
		col := 0
		for _, cell := range cells {
			for covered(col) {
				pending[col]--
				out = append(out, "")
				col++
			}
			out = append(out, cell.text)
			claim(col, cell.rowSpan-1)
			col++
			for i := 1; i < cell.colSpan; i++ {
				out = append(out, "")
				claim(col, cell.rowSpan-1)
				col++
			}
		}
		for covered(col) {
			pending[col]--
			out = append(out, "")
			col++
		}
		return out
	}

	handleRow := func(tr *html.Node, inHead bool) {
		var cells []spannedCell
		allHeader := true
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data != "th" && c.Data != "td" {
				continue
			}

			cell := spannedCell{text: textContent(c), rowSpan: 1, colSpan: 1}
			for _, attr := range c.Attr {
				switch attr.Key {
				case "rowspan":
					fmt.Sscanf(attr.Val, "%d", &cell.rowSpan)
				case "colspan":
					fmt.Sscanf(attr.Val, "%d", &cell.colSpan)
				}
			}
			if cell.rowSpan < 1 {
				cell.rowSpan = 1
			}
			if cell.colSpan < 1 {
				cell.colSpan = 1
			}

			if c.Data == "td" {
				allHeader = false
			}
			cells = append(cells, cell)
		}
		if len(cells) == 0 {
			return
		}

		row := flatten(cells)
		if (inHead || allHeader) && table.Header == nil {
			table.Header = row
			return
		}
		table.Rows = append(table.Rows, row)
	}

	var walkRows func(node *html.Node, inHead bool)
	walkRows = func(node *html.Node, inHead bool) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.Data {
			case "thead":
				walkRows(c, true)
			case "tbody", "tfoot":
				walkRows(c, false)
			case "tr":
				handleRow(c, inHead)
			}
		}
	}
	walkRows(n, false)

	if table.Header == nil && len(table.Rows) == 0 {
		return nil
	}
	return table
}

// codeFromNode extracts a <pre> block's raw lines and the language
// from a nested <code class="language-...">.
func codeFromNode(n *html.Node, gen *idGen) *model.Code {
	raw := rawTextContent(n)
	raw = strings.TrimPrefix(raw, "\n")
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil
	}

	code := &model.Code{
		ElementID: gen.id(),
		Lines:     strings.Split(raw, "\n"),
	}
	if inner := findNode(n, "code"); inner != nil {
		for _, attr := range inner.Attr {
			if attr.Key != "class" {
				continue
			}
			for _, class := range strings.Fields(attr.Val) {
				if lang := strings.TrimPrefix(class, "language-"); lang != class {
					code.Language = lang
				} else if lang := strings.TrimPrefix(class, "lang-"); lang != class {
					code.Language = lang
				}
			}
		}
	}
	return code
}

// skipHTMLElement reports elements whose content never reaches the
// page.
func skipHTMLElement(tag string) bool {
	switch tag {
	case "script", "style", "noscript", "template", "svg", "iframe", "object", "embed", "head":
		return true
	}
	return false
}

// hasBlockChildren reports whether the node directly contains
// block-level elements, which means its text is not one paragraph.
func hasBlockChildren(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "div", "p", "ul", "ol", "table", "h1", "h2", "h3", "h4", "h5", "h6", "blockquote", "pre", "article", "section", "figure":
			return true
		}
	}
	return false
}

// findNode returns the first descendant element with the given tag.
func findNode(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// textContent flattens a subtree to whitespace-normalized text.
func textContent(n *html.Node) string {
	var sb strings.Builder
	collectText(n, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	if n.Type == html.ElementNode {
		if skipHTMLElement(n.Data) || n.Data == "img" {
			return
		}
		if n.Data == "br" {
			sb.WriteString(" ")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			sb.WriteString(" ")
		}
	}
}

// rawTextContent concatenates text nodes verbatim, preserving
// newlines. Used for code blocks where whitespace is content.
func rawTextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
			return
		}
		if node.Type == html.ElementNode && node.Data == "br" {
			sb.WriteString("\n")
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// directTextContent flattens a node's text excluding nested block
// elements, so a list item's text stops before its sublist.
func directTextContent(n *html.Node) string {
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
			continue
		}
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "ul", "ol", "div", "p", "table", "blockquote", "pre":
			continue
		default:
			sb.WriteString(textContent(c))
			sb.WriteString(" ")
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
