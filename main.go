package main

import (
	"fmt"
	"os"

	"rentdesk-backend/cmd/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
