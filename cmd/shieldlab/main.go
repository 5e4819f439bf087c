// Command shieldlab compares radiation shielding materials and checks the
// floor load of shielding walls.
package main

import (
	"os"

	"github.com/roach88/shieldlab/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
