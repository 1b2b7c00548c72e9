package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/grammar"
	"github.com/CollinDietz/space-traders-cli/internal/ports"
)

type State int

const (
	Idle State = iota
	Reading
	Dispatching
	Terminated
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Reading:
		return "reading"
	case Dispatching:
		return "dispatching"
	case Terminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

const (
	exitCommand = "exit"
	helpCommand = "help"
)

// ErrInterrupted is returned by line readers when the user interrupts
// input.
var ErrInterrupted = errors.New("interrupted")

// LineReader yields one submitted line per call and io.EOF at the end of
// input.
type LineReader interface {
	ReadLine() (string, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, command grammar.Command) error
}

type Options struct {
	Out     io.Writer
	Logger  *slog.Logger
	History ports.HistoryStore
	// Interrupts terminates the shell. A signal that arrives while a
	// command runs takes effect once the command has completed.
	Interrupts <-chan os.Signal
}

// Shell is the interactive loop: read a line, tokenize it, parse it and
// hand the command to the dispatcher, one command at a time.
type Shell struct {
	reader     LineReader
	dispatcher Dispatcher
	out        io.Writer
	logger     *slog.Logger
	history    ports.HistoryStore
	interrupts <-chan os.Signal

	state   State
	entries []string
}

func New(reader LineReader, dispatcher Dispatcher, opts Options) *Shell {
	s := &Shell{
		reader:     reader,
		dispatcher: dispatcher,
		out:        opts.Out,
		logger:     opts.Logger,
		history:    opts.History,
		interrupts: opts.Interrupts,
	}
	if s.out == nil {
		s.out = io.Discard
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	return s
}

func (s *Shell) State() State { return s.state }

// History returns the lines entered so far, oldest first, including the
// ones loaded at startup.
func (s *Shell) History() []string {
	return append([]string(nil), s.entries...)
}

// Start loads the persisted history. A history that cannot be read is a
// persistence failure.
func (s *Shell) Start(ctx context.Context) error {
	if s.history == nil {
		return nil
	}

	lines, err := s.history.Load(ctx)
	if err != nil {
		return domain.Persistence("load history", err)
	}
	s.entries = append(s.entries[:0], lines...)

	if seeder, ok := s.reader.(interface{ SeedHistory([]string) }); ok {
		seeder.SeedHistory(lines)
	}
	s.logger.Debug("history loaded", "entries", len(lines))
	return nil
}

// Run loops until exit, end of input or an interrupt, then flushes the
// history.
func (s *Shell) Run(ctx context.Context) error {
	if err := s.Start(ctx); err != nil {
		return err
	}
	for s.state != Terminated {
		s.Step(ctx)
	}
	return nil
}

// Step reads and handles one line.
func (s *Shell) Step(ctx context.Context) State {
	if s.state == Terminated {
		return s.state
	}

	s.state = Reading
	line, err := s.read(ctx)
	if err != nil {
		if !errors.Is(err, io.EOF) && !errors.Is(err, ErrInterrupted) && !errors.Is(err, context.Canceled) {
			s.logger.Warn("reading input failed", "error", err)
		}
		s.terminate(ctx)
		return s.state
	}

	line = strings.TrimSpace(line)
	if line == "" {
		s.state = Idle
		return s.state
	}
	if line == exitCommand {
		s.record(line)
		s.terminate(ctx)
		return s.state
	}

	s.state = Dispatching
	s.record(line)
	s.handle(ctx, line)

	if s.interrupted() {
		s.terminate(ctx)
		return s.state
	}
	s.state = Idle
	return s.state
}

type readResult struct {
	line string
	err  error
}

func (s *Shell) read(ctx context.Context) (string, error) {
	if s.interrupts == nil {
		return s.reader.ReadLine()
	}

	result := make(chan readResult, 1)
	go func() {
		line, err := s.reader.ReadLine()
		result <- readResult{line: line, err: err}
	}()

	select {
	case r := <-result:
		return r.line, r.err
	case <-s.interrupts:
		return "", ErrInterrupted
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func (s *Shell) handle(ctx context.Context, line string) {
	if line == helpCommand {
		s.print(grammar.Usage())
		return
	}

	tokens, err := shellquote.Split(line)
	if err != nil {
		s.print(fmt.Sprintf("Error: %v\n", err))
		return
	}

	command, err := grammar.Parse(tokens)
	if err != nil {
		var parseErr *grammar.ParseError
		switch {
		case grammar.IsHelp(err) && errors.As(err, &parseErr):
			s.print(parseErr.Usage)
		case errors.As(err, &parseErr):
			s.print(fmt.Sprintf("Error: %v\n%s", parseErr.Err, parseErr.Usage))
		default:
			s.print(fmt.Sprintf("Error: %v\n", err))
		}
		return
	}

	// The command always runs to completion; an interrupt only ends the
	// loop afterwards.
	if err := s.dispatcher.Dispatch(context.WithoutCancel(ctx), command); err != nil {
		s.logger.Debug("command failed", "command", command.Path(), "error", err)
	}
}

func (s *Shell) interrupted() bool {
	if s.interrupts == nil {
		return false
	}
	select {
	case <-s.interrupts:
		return true
	default:
		return false
	}
}

func (s *Shell) record(line string) {
	if n := len(s.entries); n > 0 && s.entries[n-1] == line {
		return
	}
	s.entries = append(s.entries, line)
}

func (s *Shell) terminate(ctx context.Context) {
	s.state = Terminated
	if s.history == nil {
		return
	}
	if err := s.history.Save(context.WithoutCancel(ctx), s.entries); err != nil {
		s.logger.Warn("history flush failed", "error", err)
	}
}

func (s *Shell) print(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = io.WriteString(s.out, text)
}
