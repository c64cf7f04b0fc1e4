package main

import "github.com/andrescamacho/starship-engine/internal/adapters/cli"

func main() {
	cli.Execute()
}
