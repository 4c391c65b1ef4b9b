// Command dirtree snapshots a directory tree and reports statistics about it.
package main

import (
	"fmt"
	"os"

	"github.com/idelchi/dirtree/internal/cli"
)

// version is set at build time.
//
//nolint:gochecknoglobals // Set by the linker.
var version = "unknown - unofficial & generated by unknown"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
