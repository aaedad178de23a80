package main

import (
	"os"

	"github.com/alantheprice/bottombar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
