// Command pmvault is a local password vault.
package main

import (
	"context"
	"os"

	"github.com/awnumar/memguard"
	"github.com/dmitrijs2005/pmvault/internal/cli"
)

func main() {
	// Wipe every locked buffer on Ctrl-C and on normal exit.
	memguard.CatchInterrupt()

	code := cli.Execute(context.Background(), os.Args[1:])

	memguard.Purge()
	os.Exit(code)
}
