package cmd

import (
	"fmt"

	"github.com/go-drift/circulargraph/pkg/config"
)

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the CLI version, build time and the ring.yaml schema version it reads.",
		Usage: "circulargraph version",
		Run: func(args []string) error {
			fmt.Fprintf(stdout, "circulargraph version %s (built %s, schema %s)\n", Version, BuildTime, config.SchemaVersion)
			return nil
		},
	})
}
