// Command pathgen generates Go accessors for a directory of vector icons.
package main

import (
	"os"

	"github.com/spf13/afero"
)

var version = "dev"

func main() {
	cmd := newRootCmd(afero.NewOsFs())
	cmd.Version = version
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
