package main

import (
	"os"

	"github.com/anupamd/studypulse/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
