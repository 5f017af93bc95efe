package main

import "github.com/mbellido/portions/internal/cli"

func main() {
	cli.Execute()
}
