package main

import (
	"fmt"
	"os"

	"github.com/gardeo/concierge/cmd/concierge"
)

func main() {
	if err := concierge.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
