package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/hito/cmd"
	"github.com/thenoetrevino/hito/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// Command failures were already reported by the output formatter
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code == cli.ExitUsage {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(cli.ExitCode(err))
}
