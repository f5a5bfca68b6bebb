// Package main is the entry point for bankctl CLI.
package main

import (
	"os"

	"github.com/shunichi-ikebuchi/banking-system/cmd/bankctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
