package main

import (
	"os"

	"github.com/arena/gotofix/internal/adapters/inbound/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
