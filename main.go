package main

import (
	"github.com/StrikerX3/DreamNexus/cli"
)

func main() {
	cli.Start()
}
