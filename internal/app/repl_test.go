package app

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) AddRecord(ctx context.Context) error {
	f.calls = append(f.calls, "add")
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Average(ctx context.Context) error {
	f.calls = append(f.calls, "avg")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Export(ctx context.Context) error {
	f.calls = append(f.calls, "export")
	return nil
}

func runScript(t *testing.T, exec *fakeExec, lines ...string) []string {
	t.Helper()

	var output []string
	origPrint := printlnFn
	printlnFn = func(args ...any) (int, error) {
		output = append(output, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
	return output
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec,
		"register",
		"login",
		"add",
		"list",
		"l",
		"avg",
		"stats",
		"export",
		"logout",
		"exit",
	)

	assert.Equal(t,
		[]string{"register", "login", "add", "list", "list", "avg", "stats", "export", "logout"},
		exec.calls)
}

func TestRunREPL_UnknownCommandReported(t *testing.T) {
	exec := &fakeExec{}
	output := runScript(t, exec, "frobnicate", "exit")

	assert.Empty(t, exec.calls)
	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "Unknown command:")
	assert.Contains(t, joined, "frobnicate")
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	exec := &fakeExec{}
	output := runScript(t, exec, "help", "login", "help", "exit")

	joined := strings.Join(output, "\n")
	assert.Contains(t, joined, "register, login, exit")
	assert.Contains(t, joined, "add, (l)ist, avg, stats, export, logout, exit")
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "login")

	assert.Equal(t, []string{"login"}, exec.calls)
}

func TestRunREPL_BlankLinesSkipped(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "", "   ", "login", "quit")

	assert.Equal(t, []string{"login"}, exec.calls)
}
