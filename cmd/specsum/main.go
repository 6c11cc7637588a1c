package main

import (
	"os"

	"github.com/mkbv/specsum/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
