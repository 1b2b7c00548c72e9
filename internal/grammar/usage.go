package grammar

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// Usage renders every leaf of the grammar with its flags.
func Usage() string {
	var b strings.Builder
	b.WriteString("Commands:\n")

	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)
	for _, path := range Paths() {
		node, _ := Find(path)
		if !node.IsLeaf() {
			continue
		}
		line := path
		if synopsis := node.synopsis(); synopsis != "" {
			line += " " + synopsis
		}
		_, _ = fmt.Fprintf(w, "  %s\t%s\n", line, node.Summary)
	}
	_ = w.Flush()

	b.WriteString("\nUse \"help <command>\" or \"<command> --help\" for details.\n")
	return b.String()
}
