package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/CollinDietz/space-traders-cli/internal/shell"
)

// runShell hydrates the known agents and hands the terminal to the
// interactive shell until it terminates.
func runShell(cmd *cobra.Command, a *app) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	_ = a.progress.Run(ctx, "Loading agents...", func(ctx context.Context) error {
		hydrated := a.state.Registry().Hydrate(ctx, a.settings.GetInt(hydrateConcurrencyKey))
		a.logger.Debug("agents hydrated", "hydrated", hydrated, "known", a.state.Registry().Len())
		return nil
	})

	var reader shell.LineReader
	if in, ok := cmd.InOrStdin().(*os.File); ok && shell.IsTerminal(in) {
		terminal := shell.NewTerminalReader(in, out, shell.Prompt, shell.Complete)
		defer func() { _ = terminal.Close() }()
		reader = terminal
		_, _ = fmt.Fprintln(out, `Type "help" for commands, "exit" to quit.`)
	} else {
		reader = shell.NewScannerReader(cmd.InOrStdin(), out, "")
	}

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)

	repl := shell.New(reader, a.dispatcher, shell.Options{
		Out:        out,
		Logger:     a.logger,
		History:    a.history,
		Interrupts: interrupts,
	})
	if err := repl.Run(ctx); err != nil {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return &ExitError{Code: exitFailure}
	}
	return nil
}
