package classify

import (
	"reflect"
	"testing"

	"github.com/tsawler/folio/model"
)

const sampleMarkdown = "# Report\n" +
	"\n" +
	"First paragraph with *emphasis* and a [link](https://example.com).\n" +
	"\n" +
	"Second paragraph\n" +
	"continues on the next line.\n" +
	"\n" +
	"- alpha\n" +
	"- beta\n" +
	"  - nested\n" +
	"- gamma\n" +
	"\n" +
	"| Name | Count |\n" +
	"|------|-------|\n" +
	"| foo  | 1     |\n" +
	"| bar  | 2     |\n" +
	"\n" +
	"```go\n" +
	"func main() {\n" +
	"\tfmt.Println(\"hi\")\n" +
	"}\n" +
	"```\n" +
	"\n" +
	"> Quoted wisdom.\n" +
	"\n" +
	"![diagram](images/arch.png)\n"

func TestClassifyMarkdown(t *testing.T) {
	elements := ClassifyAs(sampleMarkdown, FormatMarkdown)

	wantTypes := []model.ElementType{
		model.ElementTypeHeading,
		model.ElementTypeText,
		model.ElementTypeText,
		model.ElementTypeList,
		model.ElementTypeTable,
		model.ElementTypeCode,
		model.ElementTypeText,
		model.ElementTypeImage,
	}
	if len(elements) != len(wantTypes) {
		t.Fatalf("Expected %d elements, got %d", len(wantTypes), len(elements))
	}
	for i, want := range wantTypes {
		if elements[i].Type() != want {
			t.Errorf("Element %d: expected type %v, got %v", i, want, elements[i].Type())
		}
	}
}

func TestClassifyMarkdown_Heading(t *testing.T) {
	elements := ClassifyAs("## Section *Two*", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	h, ok := elements[0].(*model.Heading)
	if !ok {
		t.Fatalf("Expected *model.Heading, got %T", elements[0])
	}
	if h.Level != 2 {
		t.Errorf("Expected level 2, got %d", h.Level)
	}
	if h.Content != "Section Two" {
		t.Errorf("Expected %q, got %q", "Section Two", h.Content)
	}
}

func TestClassifyMarkdown_InlineCollapse(t *testing.T) {
	elements := ClassifyAs("Use `go build` to [compile](https://go.dev) *fast*.", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	txt, ok := elements[0].(*model.Text)
	if !ok {
		t.Fatalf("Expected *model.Text, got %T", elements[0])
	}
	if txt.Content != "Use go build to compile fast." {
		t.Errorf("Expected collapsed inline text, got %q", txt.Content)
	}
}

func TestClassifyMarkdown_SoftBreakJoins(t *testing.T) {
	elements := ClassifyAs("line one\nline two", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	txt := elements[0].(*model.Text)
	if txt.Content != "line one line two" {
		t.Errorf("Expected soft break to join lines, got %q", txt.Content)
	}
}

func TestClassifyMarkdown_OrderedList(t *testing.T) {
	elements := ClassifyAs("1. first\n2. second\n3. third", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	list, ok := elements[0].(*model.List)
	if !ok {
		t.Fatalf("Expected *model.List, got %T", elements[0])
	}
	if !list.Ordered {
		t.Error("Expected ordered list")
	}
	want := []model.ListItem{
		{Text: "first", Level: 0},
		{Text: "second", Level: 0},
		{Text: "third", Level: 0},
	}
	if !reflect.DeepEqual(list.Items, want) {
		t.Errorf("Expected %v, got %v", want, list.Items)
	}
}

func TestClassifyMarkdown_NestedList(t *testing.T) {
	md := "- parent\n  - child one\n  - child two\n- sibling"
	elements := ClassifyAs(md, FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	list := elements[0].(*model.List)
	if list.Ordered {
		t.Error("Expected unordered list")
	}
	want := []model.ListItem{
		{Text: "parent", Level: 0},
		{Text: "child one", Level: 1},
		{Text: "child two", Level: 1},
		{Text: "sibling", Level: 0},
	}
	if !reflect.DeepEqual(list.Items, want) {
		t.Errorf("Expected %v, got %v", want, list.Items)
	}
}

func TestClassifyMarkdown_Table(t *testing.T) {
	md := "| Name | Qty |\n|------|-----|\n| apples | 1 |\n| bananas | 2 |"
	elements := ClassifyAs(md, FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	table, ok := elements[0].(*model.Table)
	if !ok {
		t.Fatalf("Expected *model.Table, got %T", elements[0])
	}
	if !reflect.DeepEqual(table.Header, []string{"Name", "Qty"}) {
		t.Errorf("Expected header [Name Qty], got %v", table.Header)
	}
	wantRows := [][]string{{"apples", "1"}, {"bananas", "2"}}
	if !reflect.DeepEqual(table.Rows, wantRows) {
		t.Errorf("Expected rows %v, got %v", wantRows, table.Rows)
	}
}

func TestClassifyMarkdown_FencedCode(t *testing.T) {
	md := "```python\ndef f():\n    return 1\n```"
	elements := ClassifyAs(md, FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	code, ok := elements[0].(*model.Code)
	if !ok {
		t.Fatalf("Expected *model.Code, got %T", elements[0])
	}
	if code.Language != "python" {
		t.Errorf("Expected language python, got %q", code.Language)
	}
	wantLines := []string{"def f():", "    return 1"}
	if !reflect.DeepEqual(code.Lines, wantLines) {
		t.Errorf("Expected lines %v, got %v", wantLines, code.Lines)
	}
}

func TestClassifyMarkdown_DisplayMath(t *testing.T) {
	elements := ClassifyAs(`$$\int_0^1 x^2 dx$$`, FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	latex, ok := elements[0].(*model.Latex)
	if !ok {
		t.Fatalf("Expected *model.Latex, got %T", elements[0])
	}
	if latex.Content != `\int_0^1 x^2 dx` {
		t.Errorf("Expected delimiters stripped, got %q", latex.Content)
	}
	if len(latex.Style.LatexSegments) != 0 {
		t.Errorf("Expected no segments for display math, got %v", latex.Style.LatexSegments)
	}
}

func TestClassifyMarkdown_InlineMath(t *testing.T) {
	elements := ClassifyAs(`Euler found $e^{i\pi}+1=0$ remarkable.`, FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	latex, ok := elements[0].(*model.Latex)
	if !ok {
		t.Fatalf("Expected *model.Latex, got %T", elements[0])
	}
	if len(latex.Style.LatexSegments) != 1 {
		t.Fatalf("Expected 1 math segment, got %d", len(latex.Style.LatexSegments))
	}

	span := latex.Style.LatexSegments[0]
	if got := latex.Content[span.Start:span.End]; got != `$e^{i\pi}+1=0$` {
		t.Errorf("Expected segment to cover the math run, got %q", got)
	}
}

func TestClassifyMarkdown_DollarAmountsStayText(t *testing.T) {
	elements := ClassifyAs("Lunch cost $12 and dinner cost $30 in total.", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}
	if _, ok := elements[0].(*model.Text); !ok {
		t.Errorf("Expected prose with prices to stay *model.Text, got %T", elements[0])
	}
}

func TestClassifyMarkdown_ImageWithDataURI(t *testing.T) {
	uri := pngDataURI(t, 4, 3)
	elements := ClassifyAs("![tiny]("+uri+")", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	img, ok := elements[0].(*model.Image)
	if !ok {
		t.Fatalf("Expected *model.Image, got %T", elements[0])
	}
	if img.Alt != "tiny" {
		t.Errorf("Expected alt %q, got %q", "tiny", img.Alt)
	}
	if img.NaturalWidth != 4 || img.NaturalHeight != 3 {
		t.Errorf("Expected natural size 4x3, got %gx%g", img.NaturalWidth, img.NaturalHeight)
	}
}

func TestClassifyMarkdown_ExternalImage(t *testing.T) {
	elements := ClassifyAs("![diagram](images/arch.png)", FormatMarkdown)
	img := elements[0].(*model.Image)
	if img.Source != "images/arch.png" {
		t.Errorf("Expected source images/arch.png, got %q", img.Source)
	}
	if img.NaturalWidth != 0 || img.NaturalHeight != 0 {
		t.Errorf("Expected unknown natural size, got %gx%g", img.NaturalWidth, img.NaturalHeight)
	}
}

func TestClassifyMarkdown_Blockquote(t *testing.T) {
	elements := ClassifyAs("> First line.\n>\n> Second thought.", FormatMarkdown)
	if len(elements) != 1 {
		t.Fatalf("Expected 1 element, got %d", len(elements))
	}

	txt := elements[0].(*model.Text)
	if txt.Content != "First line.\n\nSecond thought." {
		t.Errorf("Expected paragraph boundary preserved, got %q", txt.Content)
	}
}

func TestClassify_SequentialIDs(t *testing.T) {
	elements := Classify("# A\n\nfirst\n\nsecond")
	if len(elements) != 3 {
		t.Fatalf("Expected 3 elements, got %d", len(elements))
	}

	want := []string{"el-1", "el-2", "el-3"}
	for i, el := range elements {
		if el.ID() != want[i] {
			t.Errorf("Element %d: expected ID %q, got %q", i, want[i], el.ID())
		}
	}
}

func TestClassify_Deterministic(t *testing.T) {
	a := Classify(sampleMarkdown)
	b := Classify(sampleMarkdown)
	if !reflect.DeepEqual(a, b) {
		t.Error("Expected identical input to classify identically")
	}
}
