package main

import (
	"fmt"
	"os"

	"photopred/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "photopred: "+err.Error())
		os.Exit(1)
	}
}
