package main

import "github.com/SeamusWaldron/kociemba/internal/cli"

func main() {
	cli.Execute()
}
