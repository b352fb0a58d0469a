package main

import (
	"os"
)

// version is set at build time.
var version = "dev"

func main() {
	// Without a subcommand the API server is started.
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	if err := newRootCmd(version).Execute(); err != nil {
		os.Exit(1)
	}
}
