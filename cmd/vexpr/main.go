// Command vexpr runs programs written in the small S-expression surface
// syntax internal/reader implements for this interpreter core.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/vexpr/cmd/vexpr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
