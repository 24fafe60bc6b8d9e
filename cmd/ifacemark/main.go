// Command ifacemark maintains marker interface assertions and validates
// marker interface declarations.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/hmarui/ifacemark"
)

func main() {
	singlechecker.Main(ifacemark.Analyzer)
}
