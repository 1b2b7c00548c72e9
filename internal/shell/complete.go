package shell

import (
	"strings"

	"github.com/CollinDietz/space-traders-cli/internal/grammar"
)

var builtins = []string{helpCommand, exitCommand}

// Complete proposes words for the end of line: the grammar's candidates,
// plus the shell builtins in first position.
func Complete(line string) []string {
	candidates := grammar.Complete(line)
	if strings.ContainsAny(strings.TrimLeft(line, " \t"), " \t") {
		return candidates
	}

	partial := strings.TrimSpace(line)
	for _, builtin := range builtins {
		if strings.HasPrefix(builtin, partial) {
			candidates = append(candidates, builtin)
		}
	}
	return candidates
}

// applyCompletion replaces the word before pos with the longest prefix
// shared by candidates. A single candidate is completed with a trailing
// space. ok is false when the line would not change.
func applyCompletion(line string, pos int, candidates []string) (string, int, bool) {
	if len(candidates) == 0 || pos < 0 || pos > len(line) {
		return "", 0, false
	}

	head := line[:pos]
	start := strings.LastIndexAny(head, " \t") + 1
	partial := head[start:]

	replacement := commonPrefix(candidates)
	if len(candidates) == 1 {
		replacement += " "
	}
	if len(replacement) <= len(partial) || !strings.HasPrefix(replacement, partial) {
		return "", 0, false
	}

	newLine := head[:start] + replacement + line[pos:]
	return newLine, start + len(replacement), true
}

func commonPrefix(values []string) string {
	if len(values) == 0 {
		return ""
	}
	prefix := values[0]
	for _, value := range values[1:] {
		for !strings.HasPrefix(value, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}

func listCandidates(candidates []string) string {
	return strings.Join(candidates, "  ") + "\n"
}
