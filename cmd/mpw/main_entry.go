//go:build !testcoverage

package main

import (
	"os"

	"github.com/awnumar/memguard"
)

func main() {
	memguard.CatchInterrupt()
	defer memguard.Purge()

	if err := run(os.Args, DefaultConfig()); err != nil {
		memguard.Purge()
		fatal("mpw: %v", err)
	}
}
