package main

import (
	"os"

	"github.com/arthur-debert/cs01/cmd/cs01/commands"
)

func main() {
	os.Exit(commands.Execute(os.Stdout, os.Stderr, os.Args[1:]))
}
