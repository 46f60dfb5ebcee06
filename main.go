package main

import (
	"xtaskctl/internal/cli"
)

func main() {
	cli.Execute()
}
