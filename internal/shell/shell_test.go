package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/CollinDietz/space-traders-cli/internal/domain"
	"github.com/CollinDietz/space-traders-cli/internal/grammar"
	"github.com/CollinDietz/space-traders-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	lines []string
}

func (r *scriptedReader) ReadLine() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

type recordingDispatcher struct {
	commands []grammar.Command
	err      error
	onCall   func()
}

func (d *recordingDispatcher) Dispatch(_ context.Context, command grammar.Command) error {
	d.commands = append(d.commands, command)
	if d.onCall != nil {
		d.onCall()
	}
	return d.err
}

func newTestShell(t *testing.T, lines ...string) (*Shell, *recordingDispatcher, *mocks.MockHistoryStore, *bytes.Buffer) {
	t.Helper()

	history := mocks.NewMockHistoryStore(t)
	dispatcher := &recordingDispatcher{}
	var out bytes.Buffer
	shell := New(&scriptedReader{lines: lines}, dispatcher, Options{Out: &out, History: history})
	return shell, dispatcher, history, &out
}

func TestShellExitTerminatesAndFlushesHistory(t *testing.T) {
	shell, dispatcher, history, _ := newTestShell(t, "agent list-agents", "exit", "agent list-agents")
	history.EXPECT().Load(mock.Anything).Return([]string{"contract list --callsign ZETA-1"}, nil).Once()
	history.EXPECT().
		Save(mock.Anything, []string{"contract list --callsign ZETA-1", "agent list-agents", "exit"}).
		Return(nil).
		Once()

	require.NoError(t, shell.Run(context.Background()))

	assert.Equal(t, Terminated, shell.State())
	require.Len(t, dispatcher.commands, 1)
	assert.Equal(t, grammar.ListAgents{}, dispatcher.commands[0])
}

func TestShellEmptyLineDoesNotDispatch(t *testing.T) {
	shell, dispatcher, _, _ := newTestShell(t, "", "   ")

	assert.Equal(t, Idle, shell.Step(context.Background()))
	assert.Equal(t, Idle, shell.Step(context.Background()))
	assert.Empty(t, dispatcher.commands)
	assert.Empty(t, shell.History())
}

func TestShellEndOfInputTerminates(t *testing.T) {
	shell, _, history, _ := newTestShell(t)
	history.EXPECT().Save(mock.Anything, []string(nil)).Return(nil).Once()

	assert.Equal(t, Terminated, shell.Step(context.Background()))
	assert.Equal(t, Terminated, shell.Step(context.Background()))
}

func TestShellHelpPrintsUsage(t *testing.T) {
	shell, dispatcher, _, out := newTestShell(t, "help")

	assert.Equal(t, Idle, shell.Step(context.Background()))
	assert.Empty(t, dispatcher.commands)
	assert.Contains(t, out.String(), "Commands:")
	assert.Contains(t, out.String(), "contract accept")
}

func TestShellHelpForOneCommand(t *testing.T) {
	shell, dispatcher, _, out := newTestShell(t, "contract accept --help")

	assert.Equal(t, Idle, shell.Step(context.Background()))
	assert.Empty(t, dispatcher.commands)
	assert.Contains(t, out.String(), "--callsign")
	assert.NotContains(t, out.String(), "Error:")
}

func TestShellParseErrorsAreNotFatal(t *testing.T) {
	shell, dispatcher, _, out := newTestShell(t,
		"account register --callsign ZETA-1 --faction fooian",
		`agent info --callsign "ZETA-1`,
		"agent info --callsign ZETA-1",
	)
	ctx := context.Background()

	assert.Equal(t, Idle, shell.Step(ctx))
	assert.Contains(t, out.String(), "fooian")
	assert.Contains(t, out.String(), "Usage:")

	assert.Equal(t, Idle, shell.Step(ctx))
	assert.Contains(t, out.String(), "Unterminated")

	assert.Equal(t, Idle, shell.Step(ctx))
	require.Len(t, dispatcher.commands, 1)
	assert.Equal(t, grammar.AgentInfo{Callsign: "ZETA-1"}, dispatcher.commands[0])
}

func TestShellQuotedArguments(t *testing.T) {
	shell, dispatcher, _, _ := newTestShell(t, `account login --token 'abc def'`)

	shell.Step(context.Background())
	require.Len(t, dispatcher.commands, 1)
	assert.Equal(t, grammar.Login{Token: "abc def"}, dispatcher.commands[0])
}

func TestShellVersionIsDispatched(t *testing.T) {
	shell, dispatcher, _, _ := newTestShell(t, "version")

	assert.Equal(t, Idle, shell.Step(context.Background()))
	require.Len(t, dispatcher.commands, 1)
	assert.Equal(t, grammar.ShowVersion{}, dispatcher.commands[0])
}

func TestShellDispatchFailureContinues(t *testing.T) {
	shell, dispatcher, _, _ := newTestShell(t, "agent info --callsign ZETA-1")
	dispatcher.err = domain.RemoteCallFailed("get agent", errors.New("offline"))

	assert.Equal(t, Idle, shell.Step(context.Background()))
}

func TestShellInterruptDuringCommandTerminatesAfterwards(t *testing.T) {
	interrupts := make(chan os.Signal, 1)
	history := mocks.NewMockHistoryStore(t)
	history.EXPECT().Save(mock.Anything, []string{"agent list-agents"}).Return(nil).Once()

	dispatcher := &recordingDispatcher{onCall: func() { interrupts <- syscall.SIGINT }}
	shell := New(&scriptedReader{lines: []string{"agent list-agents", "agent list-agents"}}, dispatcher, Options{
		History:    history,
		Interrupts: interrupts,
	})

	assert.Equal(t, Terminated, shell.Step(context.Background()))
	assert.Len(t, dispatcher.commands, 1)
}

func TestShellHistoryFlushFailureIsNotFatal(t *testing.T) {
	shell, _, history, _ := newTestShell(t, "exit")
	history.EXPECT().Load(mock.Anything).Return(nil, nil).Once()
	history.EXPECT().Save(mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()

	require.NoError(t, shell.Run(context.Background()))
	assert.Equal(t, Terminated, shell.State())
}

func TestShellHistoryLoadFailureIsFatal(t *testing.T) {
	shell, _, history, _ := newTestShell(t)
	history.EXPECT().Load(mock.Anything).Return(nil, errors.New("permission denied")).Once()

	err := shell.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.KindPersistence, domain.KindOf(err))
}

func TestShellRecordsRepeatedLinesOnce(t *testing.T) {
	shell, _, _, _ := newTestShell(t, "help", "help", "agent list-agents")
	for range 3 {
		shell.Step(context.Background())
	}
	assert.Equal(t, []string{"help", "agent list-agents"}, shell.History())
}

func TestScannerReader(t *testing.T) {
	var out bytes.Buffer
	reader := NewScannerReader(strings.NewReader("agent list-agents\nexit\n"), &out, Prompt)

	line, err := reader.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "agent list-agents", line)

	line, err = reader.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "exit", line)

	_, err = reader.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, strings.Repeat(Prompt, 3), out.String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "dispatching", Dispatching.String())
	assert.Equal(t, "terminated", Terminated.String())
}
