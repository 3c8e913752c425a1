package main

import (
	"os"

	"github.com/aayasso/SlowMA-MVP/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
