// folio is a terminal portfolio page.
//
// Usage:
//
//	folio [--config path] [--content path] [--watch] [--verbose]
//	folio render [--width n]
//	folio check
//	folio version
package main

import (
	"os"

	"github.com/sourabhakk/folio/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
