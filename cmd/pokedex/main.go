package main

import "github.com/aalvaropc/pokedex/internal/cli"

func main() {
	cli.Execute()
}
