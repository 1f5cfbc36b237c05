// Command skinny inspects aspect keys and skin files.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/skinny/cmd/skinny/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
