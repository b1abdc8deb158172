package main

import (
	"os"

	"github.com/apex/log"

	"github.com/gorpm/rpmpack/cli/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		log.Fatalf("%s", err)
		os.Exit(1)
	}
}
