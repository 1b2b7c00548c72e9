package grammar

import (
	"bytes"
	"errors"

	"github.com/spf13/cobra"
)

var (
	// ErrHelp marks a request for usage text. The text is in ParseError.Usage.
	ErrHelp  = errors.New("help requested")
	ErrEmpty = errors.New("no command given")
)

// ParseError is a rejected command line together with the usage text of
// the deepest command that was recognized.
type ParseError struct {
	Err   error
	Usage string
}

func (e *ParseError) Error() string { return e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }

// IsHelp reports whether err is a help request rather than a failure.
func IsHelp(err error) bool {
	return errors.Is(err, ErrHelp)
}

// Parse turns a token sequence into a Command. It has no side effects
// beyond building a throwaway cobra tree, so one-shot arguments and shell
// lines go through exactly the same validation.
func Parse(tokens []string) (Command, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Err: ErrEmpty, Usage: Usage()}
	}

	var parsed Command
	var output bytes.Buffer
	rootCmd := NewCobra(func(_ *cobra.Command, command Command) error {
		parsed = command
		return nil
	})
	rootCmd.SetArgs(tokens)
	rootCmd.SetOut(&output)
	rootCmd.SetErr(&output)

	executed, err := rootCmd.ExecuteC()
	if err != nil {
		usage := ""
		if executed != nil {
			usage = executed.UsageString()
		}
		return nil, &ParseError{Err: err, Usage: usage}
	}
	if parsed == nil {
		return nil, &ParseError{Err: ErrHelp, Usage: output.String()}
	}
	return parsed, nil
}
