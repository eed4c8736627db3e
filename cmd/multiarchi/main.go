package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Totox00/multiarchi-tools/config"

	"github.com/scott-cotton/cli"
)

func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cli.MainContext(context.Background(), MainCommand(cfg))
}
