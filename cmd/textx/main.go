package main

import (
	"os"

	"github.com/msto63/textx/cmd/textx/cmd"
	txerror "github.com/msto63/textx/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(txerror.GetCode(err).ExitCode())
	}
}
