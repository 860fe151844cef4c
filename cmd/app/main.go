package main

import (
	"os"

	"github.com/hilexa-hlxa/SafeRoute/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
