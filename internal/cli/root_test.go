package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	if stdin != "" {
		cmd.SetIn(strings.NewReader(stdin))
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunStrongPassword(t *testing.T) {
	out, err := runCommand(t, "", "Tr0ub4dor&3", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Password:")
	assert.Contains(t, out, "Tr0ub4dor&3")
	assert.Contains(t, out, "Passed 4 out of 4 checks (100%), 0 ignored")
}

func TestRunWeakPasswordFails(t *testing.T) {
	out, err := runCommand(t, "", "abc", "--no-color")
	require.ErrorIs(t, err, ErrChecksFailed)

	assert.Contains(t, out, "failure")
	assert.Contains(t, out, "Password too short: 3/8 characters")
	assert.Contains(t, out, "No numeric characters in password")
	assert.Contains(t, out, "No special characters in password")
}

func TestRunIgnoreFlags(t *testing.T) {
	out, err := runCommand(t, "", "longenoughpass", "--no-color",
		"-i", "digits", "-i", "special-chars", "-i", "wordlist")
	require.NoError(t, err)

	assert.Contains(t, out, "disabled with --ignore digits")
	assert.Contains(t, out, "disabled with --ignore special-chars")
	assert.Contains(t, out, "disabled with --ignore wordlist")
	assert.Contains(t, out, "Passed 1 out of 1 checks (100%), 3 ignored")
}

func TestRunAllRulesIgnored(t *testing.T) {
	out, err := runCommand(t, "", "whatever", "--no-color",
		"-i", "min-length,digits,special-chars,wordlist")
	require.NoError(t, err)

	assert.Contains(t, out, "(N/A%)")
	assert.Contains(t, out, "4 ignored")
}

func TestRunUnknownIgnoreRule(t *testing.T) {
	_, err := runCommand(t, "", "whatever", "-i", "entropy")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrChecksFailed)
	assert.Contains(t, err.Error(), `unknown rule "entropy"`)
}

func TestRunMinLengthOverride(t *testing.T) {
	out, err := runCommand(t, "", "x9!", "--no-color", "-m", "2",
		"-i", "wordlist")
	require.NoError(t, err)
	assert.Contains(t, out, "At least 2 characters:")
}

func TestRunUnreadableWordlistFailsOnlyThatRule(t *testing.T) {
	out, err := runCommand(t, "", "Tr0ub4dor&3", "--no-color",
		"-w", "/nonexistent/wordlist.txt")
	require.ErrorIs(t, err, ErrChecksFailed)

	assert.Contains(t, out, "/nonexistent/wordlist.txt")
	assert.Contains(t, out, "Passed 3 out of 4 checks (75%), 0 ignored")
}

func TestRunExternalWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("hunter2\nletmein\n"), 0644))

	out, err := runCommand(t, "", "hunter2!", "--no-color", "-w", path, "-s", "80")
	require.ErrorIs(t, err, ErrChecksFailed)
	assert.Contains(t, out, "Best match in wordlist is hunter2")
}

func TestRunReadsPasswordFromStdin(t *testing.T) {
	out, err := runCommand(t, "Tr0ub4dor&3\n", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "Please enter the password to check.")
	assert.Contains(t, out, "Passed 4 out of 4 checks (100%), 0 ignored")
}

func TestRunConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("min_length: 20\nignore: [wordlist]\n"), 0644))

	out, err := runCommand(t, "", "Tr0ub4dor&3", "--no-color", "-c", configPath)
	require.ErrorIs(t, err, ErrChecksFailed)
	assert.Contains(t, out, "Password too short: 11/20 characters")
	assert.Contains(t, out, "disabled with --ignore wordlist")
}

func TestRunFlagOverridesConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("min_length: 20\n"), 0644))

	out, err := runCommand(t, "", "Tr0ub4dor&3", "--no-color", "-c", configPath, "-m", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "At least 8 characters:")
}

func TestRunNoColorOutputHasNoEscapes(t *testing.T) {
	out, err := runCommand(t, "", "abc", "--no-color")
	require.Error(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestErrChecksFailedIsSentinel(t *testing.T) {
	assert.True(t, errors.Is(ErrChecksFailed, ErrChecksFailed))
}
