package grammar

import (
	"strings"
	"unicode"
)

// Complete proposes words for the last, possibly empty, word of line. It
// walks the same tree the parser uses: subcommand names under a branch,
// unused flags on a leaf and enumeration values after an enum flag.
func Complete(line string) []string {
	words := strings.Fields(line)
	partial := ""
	if len(words) > 0 && !endsWithSpace(line) {
		partial = words[len(words)-1]
		words = words[:len(words)-1]
	}

	node := root
	consumed := 0
	for consumed < len(words) && !node.IsLeaf() {
		child, ok := node.Child(words[consumed])
		if !ok {
			return nil
		}
		node = child
		consumed++
	}

	if !node.IsLeaf() {
		return filterPrefix(node.ChildNames(), partial)
	}

	rest := words[consumed:]
	if len(rest) > 0 {
		if arg, ok := node.Arg(strings.TrimPrefix(rest[len(rest)-1], "--")); ok && strings.HasPrefix(rest[len(rest)-1], "--") && arg.Kind != ArgBool {
			return filterPrefix(arg.Kind.Choices(), partial)
		}
	}

	if partial != "" && !strings.HasPrefix(partial, "-") {
		return nil
	}

	used := make(map[string]struct{}, len(rest))
	for _, word := range rest {
		if name, ok := strings.CutPrefix(word, "--"); ok {
			name, _, _ = strings.Cut(name, "=")
			used[name] = struct{}{}
		}
	}

	var flags []string
	for _, arg := range node.Args {
		if _, ok := used[arg.Name]; ok {
			continue
		}
		flags = append(flags, "--"+arg.Name)
	}
	return filterPrefix(flags, partial)
}

func endsWithSpace(line string) bool {
	if line == "" {
		return false
	}
	return unicode.IsSpace(rune(line[len(line)-1]))
}

func filterPrefix(candidates []string, prefix string) []string {
	out := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate, prefix) {
			out = append(out, candidate)
		}
	}
	return out
}
