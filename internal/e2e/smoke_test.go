package e2e

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/register":
			_, _ = fmt.Fprint(w, `{"data":{"token":"agent-token","agent":{"symbol":"ZETA-1","credits":175000,"startingFaction":"COSMIC","headquarters":"X1-DF55-20250Z"}}}`)
		case "/my/agent":
			_, _ = fmt.Fprint(w, `{"data":{"symbol":"ZETA-1","credits":175000,"startingFaction":"COSMIC","headquarters":"X1-DF55-20250Z"}}`)
		case "/my/contracts":
			_, _ = fmt.Fprint(w, `{"data":[{"id":"clx0","factionSymbol":"COSMIC","type":"PROCUREMENT","terms":{"deadline":"2030-01-01T00:00:00Z","payment":{"onAccepted":1000,"onFulfilled":9000}}}],"meta":{"total":1,"page":1,"limit":20}}`)
		case "/my/contracts/clx0/accept":
			_, _ = fmt.Fprint(w, `{"data":{"contract":{"id":"clx0","factionSymbol":"COSMIC","type":"PROCUREMENT","accepted":true}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	home := t.TempDir()
	binaryPath := buildBinary(t)
	require.NoError(t, writeCredentialsFixture(home))

	stdout, stderr, err := runST(t, binaryPath, home, server.URL, "",
		"account", "register", "--callsign", "ZETA-1", "--faction", "cosmic")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Successfully registered agent ZETA-1")

	stdout, stderr, err = runST(t, binaryPath, home, server.URL,
		"contract list --callsign ZETA-1\ncontract accept --callsign ZETA-1 --id clx0\nexit\n")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "clx0")
	assert.Contains(t, stdout, "Contract accepted: clx0")

	_, stderr, err = runST(t, binaryPath, home, server.URL, "", "account", "register", "--callsign", "X", "--faction", "fooian")
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "stderr: %s", stderr)
	assert.Equal(t, 2, exitErr.ExitCode())
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "st-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/st")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build st binary: %s", string(output))
	return binaryPath
}

func runST(t *testing.T, binaryPath, home, baseURL, input string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home, "ST_API_BASE_URL="+baseURL, "ST_API_REQUESTS_PER_SECOND=0")
	cmd.Stdin = strings.NewReader(input)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeCredentialsFixture(home string) error {
	configDir := filepath.Join(home, ".config", "space-traders-cli")
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(configDir, "credentials.toml"), []byte("version = 1\naccount_token = \"account-token\"\n"), 0o600)
}
