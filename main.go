package main

import (
	"plt-reader/cli"
)

func main() {
	cli.Start()
}
