package main

import (
	"fmt"
	"os"

	"paulocell_pdv/internal/cli"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	if err := cli.NewRootCommand(nil).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
