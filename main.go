package main

import (
	"os"

	"mc/cmd"
)

func main() {
	os.Exit(cmd.Run(os.Args[1:]))
}
