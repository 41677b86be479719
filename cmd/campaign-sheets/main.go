package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/dialworks/campaign-sheets/commands"
)

func main() {
	godotenv.Load()

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
