package main

import (
	"fmt"
	"os"

	_ "date-mathematics/docs" // Swagger docs
	"date-mathematics/internal/cli"
)

func main() {
	if err := cli.Execute(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "datemath:", err)
		os.Exit(1)
	}
}
