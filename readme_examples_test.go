package folio_test

import (
	"fmt"
	"log"
	"os"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/classify"
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/model"
)

// These examples verify the README code samples compile correctly.
// They are not meant to be run as actual tests since some require files.

func Example_layoutMarkdown() {
	src := "# Report\n\nBody text.\n"

	result, warnings, err := folio.FromMarkdown(src).Result()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("pages:", result.PageCount())

	if len(warnings) > 0 {
		fmt.Println("Warnings:", folio.FormatWarnings(warnings))
	}
	// Output: pages: 1
}

func Example_layoutWithOptions() {
	src := "Some prose."

	result, warnings, err := folio.FromString(src).
		PageSize(model.Letter).
		Margins(model.UniformMargins(54)).
		FontFamily("Georgia").
		FontSize(11).
		Result()
	_ = result
	_ = warnings
	_ = err
}

func Example_walkPlacements() {
	result := folio.MustResult(folio.FromText("First.\n\nSecond.").Result())

	for _, page := range result.Pages {
		for _, pl := range page.Elements {
			fmt.Printf("%s %s at (%.0f, %.0f)\n",
				pl.Element.Type(), pl.Element.ID(), pl.Bounds.X, pl.Bounds.Y)
		}
	}
	// Output:
	// text el-1 at (72, 72)
	// text el-2 at (72, 89)
}

func Example_composeElements() {
	elements := []model.Element{
		&model.Heading{ElementID: "h1", Content: "Results", Level: 1},
		&model.Table{
			ElementID: "t1",
			Header:    []string{"Metric", "Value"},
			Rows:      [][]string{{"latency", "12ms"}, {"errors", "0"}},
		},
	}

	count, err := folio.Compose(elements...).PageCount()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("pages:", count)
	// Output: pages: 1
}

func Example_classifyDirectly() {
	elements := classify.Classify("# Title\n\n- a\n- b\n")
	for _, el := range elements {
		fmt.Println(el.Type())
	}
	// Output:
	// heading
	// list
}

func Example_exportForRenderer() {
	result := folio.MustResult(folio.FromMarkdown("# Title\n\nBody.").Result())

	if err := folio.ExportJSONL(result, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func Example_customEngine() {
	cfg := layout.DefaultConfig()
	cfg.OrphanLines = 3
	cfg.TableHeaderRepeat = true

	p := layout.NewPaginator(cfg)
	result, err := p.Layout(classify.Classify("plain paragraph"))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("placements:", len(result.Elements))
	// Output: placements: 1
}
