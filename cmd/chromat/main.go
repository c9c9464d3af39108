// Chromat converts colours between colour spaces and colour order systems
// and simulates colour vision deficiencies.
package main

import (
	"os"

	"github.com/jmylchreest/chromat/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
