package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/CollinDietz/space-traders-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			os.Exit(coder.ExitCode())
		}
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
