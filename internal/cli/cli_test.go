package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_model"
)

// run executes the command tree with an isolated config dir and database.
func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(viper.Reset)

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--config", dir,
		"--db", filepath.Join(dir, "algorithms.db"),
		"--no-color",
	}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRenderNetPlainMatchesCubeString(t *testing.T) {
	c := gocube.NewCube()
	require.NoError(t, c.ApplyAlgorithm("R U F' M2"))
	assert.Equal(t, c.String(), renderNet(c, false))
}

func TestRenderNetColor(t *testing.T) {
	net := renderNet(gocube.NewCube(), true)
	assert.Len(t, strings.Split(strings.TrimRight(net, "\n"), "\n"), 9)
	assert.NotContains(t, net, "W ")
}

func TestCaretLine(t *testing.T) {
	assert.Equal(t, "^", caretLine("Q", 1))
	assert.Equal(t, "  ^", caretLine("R Q", 3))
	assert.Equal(t, "  ^", caretLine("R²", 9))
	assert.Equal(t, "^", caretLine("", 0))
}

func TestApplyCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "apply", "R")
	require.NoError(t, err)

	c := gocube.NewCube()
	require.NoError(t, c.ApplyMove(gocube.R))
	assert.Contains(t, out, c.String())
	assert.Contains(t, out, "Solved: false")
}

func TestApplyCommandJoinsArgs(t *testing.T) {
	out, err := run(t, t.TempDir(), "apply", "--moves", "R", "U", "R'", "U'")
	require.NoError(t, err)
	assert.Contains(t, out, "R U R' U'")
	assert.Contains(t, out, "  4  U'")
}

func TestApplyCommandParseError(t *testing.T) {
	out, err := run(t, t.TempDir(), "apply", "R Q")
	require.Error(t, err)
	assert.ErrorIs(t, err, gocube.ErrInvalidNotation)
	assert.Contains(t, out, "R Q\n  ^\n")
}

func TestParseCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "parse", "r u2")
	require.NoError(t, err)
	assert.Contains(t, out, "R U U\n")
	assert.Contains(t, out, "3 moves, inverse: U' U' R'")

	out, err = run(t, t.TempDir(), "parse", "R'' U")
	require.Error(t, err)
	assert.Contains(t, out, "R'' U\n  ^\n")
}

func TestOrderCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "order", "R U R' U'")
	require.NoError(t, err)
	assert.Contains(t, out, "has order 6")

	out, err = run(t, t.TempDir(), "order", "R U", "--limit", "10")
	require.NoError(t, err)
	assert.Contains(t, out, "does not return to solved within 10")
}

func TestScrambleCommandIsReproducible(t *testing.T) {
	dir := t.TempDir()
	first, err := run(t, dir, "scramble", "--seed", "7", "-n", "12")
	require.NoError(t, err)
	second, err := run(t, dir, "scramble", "--seed", "7", "-n", "12")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "seed 7")

	line := strings.SplitN(first, "\n", 2)[0]
	moves, err := gocube.ParseAlgorithm(line)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(moves), 12)
}

func TestScrambleCommandUsesConfigLength(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "gocube.cfg.json"), `{"scrambleLength": 3, "scrambleSeed": 11}`))

	out, err := run(t, dir, "scramble")
	require.NoError(t, err)
	assert.Contains(t, out, "seed 11")
	assert.Len(t, strings.Fields(strings.SplitN(out, "\n", 2)[0]), 3)
}

func TestAlgLibrary(t *testing.T) {
	dir := t.TempDir()

	out, err := run(t, dir, "alg", "save", "sexy", "R U R' U'", "--notes", "trigger")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved sexy: R U R' U' (4 moves, order 6)")

	_, err = run(t, dir, "alg", "save", "sexy", "R")
	require.Error(t, err)

	_, err = run(t, dir, "alg", "save", "broken", "R X")
	require.Error(t, err)

	out, err = run(t, dir, "alg", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "sexy")
	assert.NotContains(t, out, "broken")

	out, err = run(t, dir, "alg", "show", "sexy")
	require.NoError(t, err)
	assert.Contains(t, out, "trigger")
	assert.Contains(t, out, "Solved: false")

	out, err = run(t, dir, "alg", "delete", "sexy")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted sexy")

	_, err = run(t, dir, "alg", "delete", "sexy")
	assert.Error(t, err)

	out, err = run(t, dir, "alg", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No algorithms saved")
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(dir, "gocube.cfg.json"), `{"orderLimit": 0}`))

	_, err := run(t, dir, "order", "R")
	assert.Error(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
