package integration

import (
	"bytes"
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCLIBinary runs the compiled binary and checks stdout and exit status
func TestCLIBinary(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping binary build in short mode")
	}

	binary := buildCLIBinary(t, getProjectRoot())

	t.Run("Should print the demonstration and exit successfully", func(t *testing.T) {
		stdout, _, code := run(t, binary)

		assert.Equal(t, 0, code)
		assert.Equal(t, "5\nHELLO\ntrue\n", stdout)
	})

	t.Run("Should exit with an error status on division by zero", func(t *testing.T) {
		stdout, stderr, code := run(t, binary, "divide", "10", "0")

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Error: [DIVISION_BY_ZERO]")
	})

	t.Run("Should exit with an error status on a null input", func(t *testing.T) {
		stdout, stderr, code := run(t, binary, "upper")

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "Error: [NULL_REFERENCE]")
	})
}

func run(t *testing.T, binary string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := exec.Command(binary, args...)
	cmd.Dir = t.TempDir()
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		code = exitErr.ExitCode()
	default:
		require.NoError(t, err)
	}
	return outBuf.String(), errBuf.String(), code
}

func buildCLIBinary(t *testing.T, projectRoot string) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "utildemo")

	buildCmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/utildemo")
	buildCmd.Dir = projectRoot

	output, err := buildCmd.CombinedOutput()
	require.NoError(t, err, "CLI binary build should succeed: %s", string(output))

	return binaryPath
}

func getProjectRoot() string {
	_, filename, _, _ := runtime.Caller(0) //nolint:dogsled // Need to extract filename for test path
	return filepath.Join(filepath.Dir(filename), "..", "..")
}
