package progress

import (
	"context"
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Runner runs fn while reporting label to the user.
type Runner interface {
	Run(ctx context.Context, label string, fn func(context.Context) error) error
}

// Silent runs fn without any output.
type Silent struct{}

func (Silent) Run(ctx context.Context, _ string, fn func(context.Context) error) error {
	return fn(ctx)
}

// Spinner draws an animated spinner on Output until fn returns.
type Spinner struct {
	Output io.Writer
}

func NewSpinner(output io.Writer) *Spinner {
	return &Spinner{Output: output}
}

// call is one invocation of fn. finished is closed once err is set.
type call struct {
	err      error
	finished chan struct{}
}

func start(ctx context.Context, fn func(context.Context) error) *call {
	c := &call{finished: make(chan struct{})}
	go func() {
		defer close(c.finished)
		c.err = fn(ctx)
	}()
	return c
}

func (c *call) wait() error {
	<-c.finished
	return c.err
}

type finishedMsg struct{}

func (c *call) awaitCmd() tea.Msg {
	<-c.finished
	return finishedMsg{}
}

// indicator renders the label beside the spinner frame until the call
// finishes, then clears its line.
type indicator struct {
	frame   spinner.Model
	label   string
	await   tea.Cmd
	stopped bool
}

func newIndicator(label string, await tea.Cmd) indicator {
	return indicator{
		frame: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		label: label,
		await: await,
	}
}

func (i indicator) Init() tea.Cmd {
	if i.await == nil {
		return i.frame.Tick
	}
	return tea.Batch(i.frame.Tick, i.await)
}

func (i indicator) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(finishedMsg); ok {
		i.stopped = true
		return i, tea.Quit
	}
	if tick, ok := msg.(spinner.TickMsg); ok && !i.stopped {
		var cmd tea.Cmd
		i.frame, cmd = i.frame.Update(tick)
		return i, cmd
	}
	return i, nil
}

func (i indicator) View() string {
	if i.stopped {
		return ""
	}
	return i.frame.View() + " " + i.label
}

// Run starts fn and animates label until fn returns. It always returns
// fn's result once fn has finished: interrupts and a canceled ctx stop
// the animation only, and drawing errors are dropped.
func (s *Spinner) Run(ctx context.Context, label string, fn func(context.Context) error) error {
	if s == nil || s.Output == nil {
		return fn(ctx)
	}

	c := start(ctx, fn)
	p := tea.NewProgram(
		newIndicator(label, c.awaitCmd),
		tea.WithInput(nil),
		tea.WithOutput(s.Output),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
	)
	_, _ = p.Run()

	return c.wait()
}
