package object

import (
	"fmt"
	"io"
)

// Display writes the canonical textual rendering of v (its String()
// form) to w, followed by a newline.
func Display(w io.Writer, v Value) error {
	_, err := fmt.Fprintln(w, v.String())
	return err
}
