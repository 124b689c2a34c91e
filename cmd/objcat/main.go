// Package main provides the objcat CLI tool for extracting loose
// version-control objects into readable text.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
