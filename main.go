// genfiles generates directory and file structures for testing purposes.
package main

import (
	"os"

	"github.com/igorbrzezek/genfiles/internal/cli"
)

// version is the application version, set via ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		os.Exit(1)
	}
}
