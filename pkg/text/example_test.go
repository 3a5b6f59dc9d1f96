package text_test

import (
	"fmt"
	"regexp"

	"github.com/walteh/rsr/pkg/text"
)

func ExampleMatcher_Replace() {
	tmpl := "${name}.v2.${ext}"
	m := text.New(regexp.MustCompile(`(?P<name>\w+)\.(?P<ext>\w+)`), &tmpl)

	fmt.Println(m.Matches("report.txt"))
	fmt.Println(m.Replace("report.txt"))
	fmt.Println(m.Replace("README").Changed())

	// Output:
	// true
	// report.v2.txt
	// false
}

func ExampleNew() {
	tmpl := "summary.txt"
	m := text.New(nil, &tmpl)

	fmt.Println(m.HasSearch())
	fmt.Println(m.Replace("report.txt"))

	// Output:
	// true
	// summary.txt
}
