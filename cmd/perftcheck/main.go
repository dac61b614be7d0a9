package main

import (
	"fmt"
	"os"

	"github.com/TKMaster27/Not-Intelligent-Chess-Engine/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "perftcheck: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
