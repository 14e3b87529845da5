package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls [][]string
}

func (r *recorder) cmd(name string, auth bool, err error) command {
	return command{
		name:  name,
		usage: name + " <arg>",
		help:  "runs " + name,
		auth:  auth,
		run: func(_ context.Context, args []string) error {
			r.calls = append(r.calls, append([]string{name}, args...))
			return err
		},
	}
}

func runLines(t *testing.T, cmds []command, loggedIn bool, lines ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), in, out, cmds, func() bool { return loggedIn }, func() string { return "> " })
	return out.String()
}

func TestREPL_Dispatch(t *testing.T) {
	rec := &recorder{}
	echo := rec.cmd("echo", false, nil)
	echo.aliases = []string{"e"}
	cmds := []command{echo}

	out := runLines(t, cmds, false, "echo a b", "  e   c  ", "", "exit", "echo never")

	require.Equal(t, [][]string{{"echo", "a", "b"}, {"echo", "c"}}, rec.calls)
	assert.Contains(t, out, "Bye!")
}

func TestREPL_UnknownCommand(t *testing.T) {
	out := runLines(t, nil, false, "frobnicate", "quit")
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestREPL_AuthGate(t *testing.T) {
	rec := &recorder{}
	cmds := []command{rec.cmd("secret", true, nil)}

	out := runLines(t, cmds, false, "secret")
	assert.Contains(t, out, "Please log in first.")
	assert.Empty(t, rec.calls)

	runLines(t, cmds, true, "secret")
	assert.Len(t, rec.calls, 1)
}

func TestREPL_Errors(t *testing.T) {
	rec := &recorder{}
	cmds := []command{
		rec.cmd("usage", false, errUsage),
		rec.cmd("nope", false, errCancelled),
		rec.cmd("boom", false, errors.New("kaboom")),
	}

	out := runLines(t, cmds, false, "usage", "nope", "boom", "exit")

	assert.Contains(t, out, "Usage: usage <arg>")
	assert.Contains(t, out, "Cancelled.")
	assert.Contains(t, out, "Error: kaboom")
	assert.Len(t, rec.calls, 3)
}

func TestREPL_StopsOnEOF(t *testing.T) {
	out := &bytes.Buffer{}
	in := bufio.NewReader(strings.NewReader(""))
	runREPL(context.Background(), in, out, nil, func() bool { return false }, func() string { return "> " })
	assert.Equal(t, "> \n", out.String())
}

func TestREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out := &bytes.Buffer{}
	runREPL(ctx, bufio.NewReader(strings.NewReader("help\n")), out, nil, func() bool { return false }, func() string { return "> " })
	assert.Empty(t, out.String())
}

func TestPrintHelp_FiltersBySession(t *testing.T) {
	rec := &recorder{}
	cmds := []command{rec.cmd("public", false, nil), rec.cmd("private", true, nil)}

	out := &bytes.Buffer{}
	printHelp(out, cmds, false)
	assert.Contains(t, out.String(), "public <arg>")
	assert.NotContains(t, out.String(), "private <arg>")

	out.Reset()
	printHelp(out, cmds, true)
	assert.Contains(t, out.String(), "private <arg>")
}

func TestCommands_UniqueNames(t *testing.T) {
	a := &App{}
	seen := map[string]bool{}
	for _, c := range a.commands() {
		for _, n := range append([]string{c.name}, c.aliases...) {
			assert.False(t, seen[n], "duplicate command %q", n)
			seen[n] = true
		}
		assert.NotNil(t, c.run, c.name)
		assert.True(t, strings.HasPrefix(c.usage, c.name), c.name)
	}
	assert.False(t, seen["help"])
	assert.False(t, seen["exit"])
}
