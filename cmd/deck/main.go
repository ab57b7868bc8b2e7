package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/idilsaglam/dailydeck/internal/cli"
)

func main() {
	// Root flags and subcommands are parsed by the CLI runner.
	code := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
