package main

import (
	"os"

	"github.com/baaaaaaaka/tabline/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
