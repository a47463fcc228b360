package main

import "github.com/chordial/chordial/internal/cli"

func main() {
	cli.Execute()
}
