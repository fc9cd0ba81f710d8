package cursor_test

import (
	"fmt"

	"github.com/katalvlaran/lvgrid/cursor"
)

// ExampleCursor shows a flat slice walked as a grid with three columns.
func ExampleCursor() {
	c := cursor.New(cursor.Values([]string{"a", "b", "c", "d", "e"}), 3)
	for pos, v := range c.All() {
		fmt.Println(pos, v)
	}

	// Output:
	// (0,0) a
	// (0,1) b
	// (0,2) c
	// (1,0) d
	// (1,1) e
}
