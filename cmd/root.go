package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/grammar"
)

type rootOptions struct {
	verbose      bool
	settingsPath string
}

func Execute() error {
	return execute(newRootCmd())
}

// execute runs rootCmd and maps the outcome onto an exit code. Command
// lines cobra rejects are reported with the usage of the closest command.
func execute(rootCmd *cobra.Command) error {
	executed, err := rootCmd.ExecuteC()
	if err == nil {
		return nil
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}

	errOut := rootCmd.ErrOrStderr()
	_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)
	if executed != nil {
		_, _ = fmt.Fprintf(errOut, "\n%s", executed.UsageString())
	}
	return &ExitError{Code: exitUsage}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	var wired *app
	load := func(cmd *cobra.Command) (*app, error) {
		if wired != nil {
			return wired, nil
		}
		a, err := wireApp(cmd.Context(), cmd, opts)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return nil, &ExitError{Code: exitFailure}
		}
		wired = a
		return a, nil
	}

	rootCmd := grammar.NewCobra(func(cmd *cobra.Command, command grammar.Command) error {
		a, err := load(cmd)
		if err != nil {
			return err
		}
		if err := a.dispatcher.Dispatch(cmd.Context(), command); err != nil {
			if domain.KindOf(err) == domain.KindParse {
				return &ExitError{Code: exitUsage}
			}
			return &ExitError{Code: exitFailure}
		}
		return nil
	})
	rootCmd.Short = "SpaceTraders command line client"

	// With no arguments the root starts the interactive shell.
	branch := rootCmd.RunE
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return branch(cmd, args)
		}
		a, err := load(cmd)
		if err != nil {
			return err
		}
		return runShell(cmd, a)
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug details to stderr")
	flags.StringVar(&opts.settingsPath, "settings", "", "settings file (default ~/.config/space-traders-cli/settings.toml)")

	return rootCmd
}
