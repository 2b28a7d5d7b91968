package main

import (
	"os"

	"github.com/giantswarm/storage-account-provisioner/internal/pkg/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
