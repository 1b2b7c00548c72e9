package shell

import (
	"bufio"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const Prompt = "st> "

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// TerminalReader edits lines on a terminal with history navigation and
// tab completion. The terminal is in raw mode only while a line is read.
type TerminalReader struct {
	fd       int
	terminal *term.Terminal

	mu       sync.Mutex
	rawState *term.State
}

func NewTerminalReader(in *os.File, out io.Writer, prompt string, complete func(string) []string) *TerminalReader {
	terminal := term.NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)

	r := &TerminalReader{fd: int(in.Fd()), terminal: terminal}
	if complete != nil {
		terminal.AutoCompleteCallback = func(line string, pos int, key rune) (string, int, bool) {
			if key != '\t' {
				return "", 0, false
			}
			candidates := complete(line[:pos])
			newLine, newPos, ok := applyCompletion(line, pos, candidates)
			if !ok && len(candidates) > 1 {
				_, _ = terminal.Write([]byte(listCandidates(candidates)))
			}
			return newLine, newPos, ok
		}
	}
	if width, height, err := term.GetSize(r.fd); err == nil {
		_ = terminal.SetSize(width, height)
	}
	return r
}

func (r *TerminalReader) ReadLine() (string, error) {
	state, err := term.MakeRaw(r.fd)
	if err != nil {
		return "", err
	}
	r.mu.Lock()
	r.rawState = state
	r.mu.Unlock()

	defer r.Close()
	return r.terminal.ReadLine()
}

// SeedHistory makes earlier lines reachable with the arrow keys.
func (r *TerminalReader) SeedHistory(lines []string) {
	for _, line := range lines {
		r.terminal.History.Add(line)
	}
}

// Close restores the terminal if a read left it in raw mode.
func (r *TerminalReader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.rawState == nil {
		return nil
	}
	err := term.Restore(r.fd, r.rawState)
	r.rawState = nil
	return err
}

// ScannerReader reads newline separated lines, for piped input.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

func NewScannerReader(in io.Reader, out io.Writer, prompt string) *ScannerReader {
	if out == nil {
		out = io.Discard
	}
	return &ScannerReader{scanner: bufio.NewScanner(in), out: out, prompt: prompt}
}

func (r *ScannerReader) ReadLine() (string, error) {
	if r.prompt != "" {
		_, _ = io.WriteString(r.out, r.prompt)
	}
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
