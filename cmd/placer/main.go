// placer is a CLI for assigning named components to discrete board
// positions while minimizing weighted interconnect length.
//
// Build:
//   go build -o placer ./cmd/placer
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
