package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const credentialsFixture = `version = 1
account_token = "account-token"

[[agents]]
id = "ZETA-1"
token = "agent-token"

[[agents]]
id = "ALPHA"
token = "alpha-token"
`

const agentBody = `{"data":{"accountId":"acc-1","symbol":"ZETA-1","headquarters":"X1-DF55-20250Z","credits":175000,"startingFaction":"COSMIC","shipCount":2}}`

func TestRegisterPersistsNewAgent(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/register", r.URL.Path)
		assert.Equal(t, "Bearer account-token", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"symbol": "NOVA", "faction": "COSMIC"}, body)

		_, _ = fmt.Fprint(w, `{"data":{"token":"nova-token","agent":{"symbol":"NOVA","credits":100000,"startingFaction":"COSMIC","headquarters":"X1-HQ-A1"}}}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	stdout, _, err := executeCLI(t, home, server.URL, "", "account", "register", "--callsign", "nova", "--faction", "cosmic")
	require.NoError(t, err)
	assert.Equal(t, int32(1), requests.Load())
	assert.Contains(t, stdout, "Successfully registered agent NOVA")
	assert.Contains(t, stdout, "100,000 cr")

	data, err := os.ReadFile(credentialsPath(home))
	require.NoError(t, err)
	assert.Contains(t, string(data), `nova-token`)
	assert.Contains(t, string(data), `ZETA-1`)

	stdout, _, err = executeCLI(t, home, server.URL, "", "agent", "list-agents")
	require.NoError(t, err)
	assert.Contains(t, stdout, "NOVA")
}

func TestRegisterRejectsUnknownFactionWithoutRemoteCall(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	_, stderr, err := executeCLI(t, home, server.URL, "", "account", "register", "--callsign", "ZETA-2", "--faction", "fooian")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, stderr, `unknown faction "fooian"`)
	assert.Contains(t, stderr, "Usage:")
}

func TestListAgentsIsLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	stdout, _, err := executeCLI(t, home, server.URL, "", "agent", "list-agents")
	require.NoError(t, err)
	assert.Less(t, strings.Index(stdout, "ZETA-1"), strings.Index(stdout, "ALPHA"))
}

func TestListAgentsWithoutCredentialsFile(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:1", "", "agent", "list-agents")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No agents registered")
}

func TestUnknownAgentIsNotAFailure(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	stdout, _, err := executeCLI(t, home, "http://127.0.0.1:1", "", "contract", "list", "--callsign", "GHOST")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No known agent with that callsign: GHOST")
}

func TestContractListAndInfo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/my/contracts", r.URL.Path)
		assert.Equal(t, "Bearer agent-token", r.Header.Get("Authorization"))
		_, _ = fmt.Fprint(w, `{"data":[{"id":"clx0","factionSymbol":"COSMIC","type":"PROCUREMENT","terms":{"deadline":"2030-01-01T00:00:00Z","payment":{"onAccepted":1500,"onFulfilled":12000},"deliver":[{"tradeSymbol":"IRON_ORE","destinationSymbol":"X1-DF55-20250Z","unitsRequired":40,"unitsFulfilled":10}]},"accepted":false,"fulfilled":false,"deadlineToAccept":"2029-12-01T00:00:00Z"}],"meta":{"total":1,"page":1,"limit":20}}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	stdout, _, err := executeCLI(t, home, server.URL, "", "contract", "list", "--callsign", "zeta-1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "clx0")
	assert.Contains(t, stdout, "13,500 cr")

	stdout, _, err = executeCLI(t, home, server.URL, "", "contract", "info", "--callsign", "ZETA-1", "--id", "clx0")
	require.NoError(t, err)
	assert.Contains(t, stdout, "IRON_ORE -> X1-DF55-20250Z")
	assert.Contains(t, stdout, "10/40")
}

func TestRemoteFailureExitsNonZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = fmt.Fprint(w, `{"error":{"message":"Token is invalid","code":401}}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	_, stderr, err := executeCLI(t, home, server.URL, "", "agent", "info", "--callsign", "ZETA-1")
	requireExitCode(t, err, exitFailure)
	assert.Contains(t, stderr, "Error:")
	assert.Contains(t, stderr, "Token is invalid")
}

func TestListWaypointsFilters(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/systems/X1-DF55/waypoints", r.URL.Path)
		assert.Equal(t, "GAS_GIANT", r.URL.Query().Get("type"))
		assert.Equal(t, "MARKETPLACE", r.URL.Query().Get("traits"))
		_, _ = fmt.Fprint(w, `{"data":[{"symbol":"X1-DF55-A1","type":"GAS_GIANT","systemSymbol":"X1-DF55","x":3,"y":-4,"traits":[{"symbol":"MARKETPLACE"}]}],"meta":{"total":1,"page":1,"limit":20}}`)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	stdout, _, err := executeCLI(t, home, server.URL, "",
		"system", "list-waypoints", "--system", "x1-df55", "--type", "gas-giant", "--trait", "marketplace")
	require.NoError(t, err)
	assert.Contains(t, stdout, "X1-DF55-A1")
	assert.Contains(t, stdout, "Gas Giant")
}

func TestUnknownCommandSuggestsAlternative(t *testing.T) {
	_, stderr, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:1", "", "contrct")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, stderr, "Did you mean this?")
	assert.Contains(t, stderr, "contract")
}

func TestBranchWithoutSubcommand(t *testing.T) {
	_, stderr, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:1", "", "contract")
	requireExitCode(t, err, exitUsage)
	assert.Contains(t, stderr, "requires a subcommand: list, info, accept")
}

func TestCorruptCredentialsFileIsFatal(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Dir(credentialsPath(home)), 0o700))
	require.NoError(t, os.WriteFile(credentialsPath(home), []byte("agents = ["), 0o600))

	_, stderr, err := executeCLI(t, home, "http://127.0.0.1:1", "", "agent", "list-agents")
	requireExitCode(t, err, exitFailure)
	assert.Contains(t, stderr, "load config")
}

func TestShellRunsPipedCommandsAndKeepsHistory(t *testing.T) {
	var agentCalls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/my/agent" {
			agentCalls.Add(1)
			_, _ = fmt.Fprint(w, agentBody)
			return
		}
		t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	home := t.TempDir()
	require.NoError(t, writeCredentialsFixture(home))

	input := "agent list-agents\n\naccount register --faction fooian --callsign X\nagent info --callsign ZETA-1\nexit\n"
	stdout, _, err := executeCLI(t, home, server.URL, input)
	require.NoError(t, err)

	assert.Contains(t, stdout, "175,000 cr")
	assert.Contains(t, stdout, `unknown faction "fooian"`)
	assert.Equal(t, int32(2), agentCalls.Load())

	history, err := os.ReadFile(filepath.Join(home, ".config", "space-traders-cli", "history"))
	require.NoError(t, err)
	assert.Equal(t, "agent list-agents\naccount register --faction fooian --callsign X\nagent info --callsign ZETA-1\nexit\n", string(history))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "http://127.0.0.1:1", "", "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestSettingsFileOverridesCredentialsPath(t *testing.T) {
	home := t.TempDir()
	custom := filepath.Join(home, "elsewhere", "creds.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(custom), 0o700))
	require.NoError(t, os.WriteFile(custom, []byte(credentialsFixture), 0o600))

	settings := filepath.Join(home, "settings.toml")
	require.NoError(t, os.WriteFile(settings, []byte(fmt.Sprintf("[credentials]\npath = %q\n", custom)), 0o600))

	stdout, _, err := executeCLI(t, home, "http://127.0.0.1:1", "", "--settings", settings, "agent", "list-agents")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ALPHA")
}

func executeCLI(t *testing.T, home, baseURL, input string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("ST_API_BASE_URL", baseURL)
	t.Setenv("ST_API_REQUESTS_PER_SECOND", "0")

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetIn(strings.NewReader(input))
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := execute(root)
	return stdout.String(), stderr.String(), err
}

func requireExitCode(t *testing.T, err error, code int) {
	t.Helper()

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, code, exitErr.ExitCode())
}

func credentialsPath(home string) string {
	return filepath.Join(home, ".config", "space-traders-cli", "credentials.toml")
}

func writeCredentialsFixture(home string) error {
	path := credentialsPath(home)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(credentialsFixture), 0o600)
}

