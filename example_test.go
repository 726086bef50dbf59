package gomatch_test

import (
	"fmt"

	"github.com/twinfer/gomatch"
)

func ExampleSearch() {
	fmt.Println(gomatch.Search("bc", "abcd"))
	fmt.Println(gomatch.Search("^bc", "abcd"))
	fmt.Println(gomatch.Search("a*b", "aaaaaab"))
	// Output:
	// true
	// false
	// true
}

func ExampleCompile() {
	m := gomatch.Compile("^colou?r$")
	for _, s := range []string{"color", "colour", "colouur"} {
		fmt.Println(s, m.Search(s))
	}
	// Output:
	// color true
	// colour true
	// colouur false
}
