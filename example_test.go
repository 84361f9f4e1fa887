package renumber_test

import (
	"fmt"

	"github.com/tsawler/renumber"
)

func Example() {
	out, _, err := renumber.FromText("Steps:\n1. Open the box.\n2. Remove the item.\n3. Close the box.").Text()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	// Output:
	// Steps:
	// 1. Open the box.
	// 2. Remove the item.
	// 3. Close the box.
}

func ExampleProcessor_Text_verbatimLine() {
	input := "Steps:\n1. Open the box.\n2. Remove the item.\n---\n3. Close the box.\n4. Check the lid."
	out, warnings, err := renumber.FromText(input).Text()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out)
	fmt.Println(renumber.FormatWarnings(warnings))
	// Output:
	// Steps:
	// 1. Open the box.
	// 2. Remove the item.
	// ---
	// 1. Close the box.
	// 2. Check the lid.
	// line 3: unparsed-line: "---"
	// line 0: first-line-unparsable: "Steps:"
}

func ExampleProcessor_Analyze() {
	result, _, err := renumber.FromText("Steps:\n1. Open the box.\n2. Remove the item.\n3. Close the box.").Analyze()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(result.Leading)
	fmt.Println(result.Elements())
	// Output:
	// outlier
	// [Open the box. Remove the item. Close the box.]
}
