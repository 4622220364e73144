// SPDX-License-Identifier: MIT

// Command katas runs the exercises from the command line.
//
// Trees are read in the parenthesized notation, e.g. `katas tree order "(1 (2 (4) (5)) (3))"`.
package main

import (
	"github.com/pterm/pterm"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			pterm.Error.Printfln("unhandled panic: %v", r)
		}
	}()

	Execute()
}
