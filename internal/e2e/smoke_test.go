package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	stdout, stderr, err := runADA(t, binaryPath, home, "amount", "format", "45119903750165.23")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Equal(t, "45,119,903,750,165.230000 ADA\n", stdout)

	_, stderr, err = runADA(t, binaryPath, home, "wallet", "create", "--name", "Primary")
	require.NoError(t, err, "stderr: %s", stderr)

	_, stderr, err = runADA(t, binaryPath, home, "tx", "add", "--wallet", "1", "--type", "income", "--amount", "42")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err = runADA(t, binaryPath, home, "wallet", "summary", "--wallet", "1")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Primary (1)")
	assert.Contains(t, stdout, "42.000000 ADA")

	_, err = os.Stat(filepath.Join(home, ".ada", "wallets.toml"))
	require.NoError(t, err)
}

func TestSmokeWaitTimeoutExitCode(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	_, stderr, err := runADA(t, binaryPath, home,
		"wait", "file", filepath.Join(home, "missing"),
		"--timeout", "50ms",
		"--interval", "20ms",
		"--quiet",
	)
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.Contains(t, stderr, "condition not met in time")
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "ada-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/ada")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build ada binary: %s", string(output))
	return binaryPath
}

func runADA(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

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
