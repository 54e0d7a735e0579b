package main

import (
	"os"

	"progviz/cmd/progviz/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
