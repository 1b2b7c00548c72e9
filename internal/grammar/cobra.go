package grammar

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Handler receives each successfully parsed command.
type Handler func(cmd *cobra.Command, command Command) error

// NewCobra builds a fresh cobra tree from the static grammar. Every leaf
// validates its flags, builds its Command and passes it to handler.
func NewCobra(handler Handler) *cobra.Command {
	rootCmd := newCobraNode(root, handler)
	rootCmd.Use = ProgramName
	rootCmd.Long = root.Summary + "\n\n" + Usage()
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	return rootCmd
}

func newCobraNode(node *Node, handler Handler) *cobra.Command {
	cmd := &cobra.Command{
		Use:   node.Name,
		Short: node.Summary,
		Long:  strings.TrimSpace(node.Summary + "\n\n" + node.Long),
	}
	cmd.SuggestionsMinimumDistance = 2

	if !node.IsLeaf() {
		cmd.RunE = branchRunE(node)
		for _, child := range node.Children {
			cmd.AddCommand(newCobraNode(child, handler))
		}
		return cmd
	}

	cmd.Args = cobra.NoArgs
	if synopsis := node.synopsis(); synopsis != "" {
		cmd.Use = node.Name + " " + synopsis
	}
	for _, arg := range node.Args {
		addFlag(cmd, arg)
	}

	build := node.build
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		command, err := build(flagValues{flags: cmd.Flags()})
		if err != nil {
			return err
		}
		return handler(cmd, command)
	}
	return cmd
}

func addFlag(cmd *cobra.Command, arg Arg) {
	usage := arg.Usage
	switch arg.Kind {
	case ArgBool:
		cmd.Flags().Bool(arg.Name, false, usage)
	case ArgFaction, ArgWaypointType:
		usage = fmt.Sprintf("%s (%s)", usage, strings.Join(arg.Kind.Choices(), "|"))
		cmd.Flags().Var(newEnumValue(arg.Kind), arg.Name, usage)
	case ArgWaypointTrait:
		cmd.Flags().Var(newEnumValue(arg.Kind), arg.Name, usage)
	default:
		cmd.Flags().String(arg.Name, "", usage)
	}

	if arg.Required {
		_ = cmd.MarkFlagRequired(arg.Name)
	}
}

func branchRunE(node *Node) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return fmt.Errorf("%q requires a subcommand: %s", cmd.CommandPath(), strings.Join(node.ChildNames(), ", "))
		}

		message := fmt.Sprintf("unknown command %q for %q", args[0], cmd.CommandPath())
		if suggestions := cmd.SuggestionsFor(args[0]); len(suggestions) > 0 {
			message += "\n\nDid you mean this?\n\t" + strings.Join(suggestions, "\n\t")
		}
		return errors.New(message)
	}
}
