package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arena/gotofix/internal/adapters/inbound/cli"
	"github.com/arena/gotofix/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "../../../../testdata/specs"

// copyFixtures copies the spec fixtures into a temp dir so tests can
// rewrite them freely.
func copyFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	entries, err := os.ReadDir(fixtureDir)
	require.NoError(t, err)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(fixtureDir, e.Name()))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, e.Name()), data, 0644))
	}
	return dir
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func readFile(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

func TestFixCommand_Output(t *testing.T) {
	dir := copyFixtures(t)

	out, err := runRoot(t, dir)
	require.NoError(t, err)

	assert.Equal(t, "Fixed: connect.spec.js\nFixed: sign.spec.js\n\nFixed 2 files\n", out)
}

func TestFixCommand_RewritesOnlyMatchingFiles(t *testing.T) {
	dir := copyFixtures(t)

	_, err := runRoot(t, dir)
	require.NoError(t, err)

	connect := readFile(t, dir, "connect.spec.js")
	assert.Contains(t, connect, "    await page.goto('/');\n\n    await installHeadlessWallet(page, { accounts: 1, chainId: 8453 });\n")

	sign := readFile(t, dir, "sign.spec.js")
	assert.Equal(t, 2, strings.Count(sign, "await page.goto('/sign');\n\n    await installHeadlessWallet"))

	for _, name := range []string{"landing.spec.js", "nested.spec.js", "already.spec.js", "helpers.js"} {
		assert.Equal(t, readFile(t, fixtureDir, name), readFile(t, dir, name), "%s should be untouched", name)
	}
}

func TestFixCommand_SecondRunFixesNothing(t *testing.T) {
	dir := copyFixtures(t)

	_, err := runRoot(t, dir)
	require.NoError(t, err)

	out, err := runRoot(t, dir)
	require.NoError(t, err)
	assert.Equal(t, "\nFixed 0 files\n", out)
}

func TestFixCommand_DryRun(t *testing.T) {
	dir := copyFixtures(t)

	out, err := runRoot(t, dir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "Would fix: connect.spec.js")
	assert.Contains(t, out, "Would fix 2 files")
	assert.Equal(t, readFile(t, fixtureDir, "connect.spec.js"), readFile(t, dir, "connect.spec.js"))
}

func TestFixCommand_Diff(t *testing.T) {
	dir := copyFixtures(t)

	out, err := runRoot(t, dir, "--dry-run", "--diff")
	require.NoError(t, err)

	assert.Contains(t, out, "--- a/connect.spec.js")
	assert.Contains(t, out, "+++ b/sign.spec.js")
	assert.Contains(t, out, "@@ ")
}

func TestFixCommand_JSON(t *testing.T) {
	dir := copyFixtures(t)

	out, err := runRoot(t, dir, "--json")
	require.NoError(t, err)

	var report domain.FixReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output should be valid JSON")
	assert.Equal(t, 5, report.Scanned)
	assert.Equal(t, 2, report.Fixed)
	require.Len(t, report.Files, 2)
	assert.Equal(t, 2, report.Files[1].Matches)
	assert.Empty(t, report.Files[0].Diff, "diffs are only included with --diff")
}

func TestFixCommand_Glob(t *testing.T) {
	dir := copyFixtures(t)

	out, err := runRoot(t, dir, "--glob", "helpers.js")
	require.NoError(t, err)
	assert.Equal(t, "Fixed: helpers.js\n\nFixed 1 files\n", out)
}

func TestFixCommand_GlobWithSeparatorRejected(t *testing.T) {
	dir := copyFixtures(t)

	_, err := runRoot(t, dir, "--glob", "../*.spec.js")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path separator")
	assert.Equal(t, readFile(t, fixtureDir, "connect.spec.js"), readFile(t, dir, "connect.spec.js"))
}

func TestFixCommand_ConfigFile(t *testing.T) {
	dir := copyFixtures(t)
	cfgPath := filepath.Join(t.TempDir(), "gotofix.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dir: "+dir+"\nglob: connect.spec.js\n"), 0644))

	out, err := runRoot(t, "--config", cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "Fixed: connect.spec.js\n\nFixed 1 files\n", out)
}

func TestFixCommand_ArgumentOverridesConfig(t *testing.T) {
	dir := copyFixtures(t)
	cfgPath := filepath.Join(t.TempDir(), "gotofix.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("dir: /does/not/exist\n"), 0644))

	out, err := runRoot(t, dir, "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "Fixed 2 files")
}

func TestFixCommand_IgnoresConfigInWorkingDirectory(t *testing.T) {
	dir := copyFixtures(t)
	wd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(wd, ".gotofix.yaml"), []byte("dir: "+dir+"\n"), 0644))
	original := readFile(t, fixtureDir, "connect.spec.js")
	t.Chdir(wd)

	out, err := runRoot(t)
	require.NoError(t, err)
	assert.Equal(t, "\nFixed 0 files\n", out)
	assert.Equal(t, original, readFile(t, dir, "connect.spec.js"))
}

func TestFixCommand_ConfigDirectory(t *testing.T) {
	dir := copyFixtures(t)
	cfgDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, ".gotofix.yaml"), []byte("dir: "+dir+"\nglob: sign.spec.js\n"), 0644))

	out, err := runRoot(t, "--config", cfgDir)
	require.NoError(t, err)
	assert.Equal(t, "Fixed: sign.spec.js\n\nFixed 1 files\n", out)
}

func TestFixCommand_MissingConfigFile(t *testing.T) {
	_, err := runRoot(t, t.TempDir(), "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestFixCommand_EmptyDirectory(t *testing.T) {
	out, err := runRoot(t, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "\nFixed 0 files\n", out)
}

func TestFixCommand_TooManyArgs(t *testing.T) {
	_, err := runRoot(t, "a", "b")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runRoot(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gotofix dev")
}
