// Command circulargraph renders and inspects ring.yaml graph definitions.
package main

import (
	"os"

	"github.com/go-drift/circulargraph/cmd/circulargraph/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
