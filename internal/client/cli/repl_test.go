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

type fakeExec struct {
	loggedIn bool
	err      error

	calls []string
	args  [][]string
}

func (f *fakeExec) rec(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                  { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error    { return f.rec("register", nil) }
func (f *fakeExec) Profile(context.Context) error     { return f.rec("profile", nil) }
func (f *fakeExec) EditProfile(context.Context) error { return f.rec("editprofile", nil) }
func (f *fakeExec) ChangePassword(context.Context) error {
	return f.rec("passwd", nil)
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.rec("login", nil)
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.rec("logout", nil)
}
func (f *fakeExec) Scan(_ context.Context, a []string) error     { return f.rec("scan", a) }
func (f *fakeExec) ScanFile(_ context.Context, a []string) error { return f.rec("scanfile", a) }
func (f *fakeExec) History(_ context.Context, a []string) error  { return f.rec("history", a) }
func (f *fakeExec) ScanStats(context.Context) error              { return f.rec("scanstats", nil) }
func (f *fakeExec) Alerts(_ context.Context, a []string) error   { return f.rec("alerts", a) }
func (f *fakeExec) AlertStats(context.Context) error             { return f.rec("alertstats", nil) }
func (f *fakeExec) Ack(_ context.Context, a []string) error      { return f.rec("ack", a) }
func (f *fakeExec) Resolve(_ context.Context, a []string) error  { return f.rec("resolve", a) }
func (f *fakeExec) Snooze(_ context.Context, a []string) error   { return f.rec("snooze", a) }
func (f *fakeExec) Dashboard(context.Context) error              { return f.rec("dashboard", nil) }
func (f *fakeExec) Analytics(_ context.Context, a []string) error {
	return f.rec("analytics", a)
}
func (f *fakeExec) Overview(_ context.Context, a []string) error { return f.rec("overview", a) }

func runLines(exec execIface, status func() string, lines ...string) string {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	runREPL(context.Background(), exec, status, r, &out)
	return out.String()
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}

	out := runLines(exec, func() string { return "" },
		"help",
		"scan secret",
		"login",
		"help",
		"scan my ssn is 123",
		"alerts 2 open",
		"ack a1",
		"resolve a1 false positive",
		"snooze a1 30",
		"overview",
		"foobar",
		"exit",
		"profile",
	)

	require.Equal(t, []string{"login", "scan", "alerts", "ack", "resolve", "snooze", "overview"}, exec.calls)
	assert.Equal(t, []string{"my", "ssn", "is", "123"}, exec.args[1])
	assert.Equal(t, []string{"2", "open"}, exec.args[2])
	assert.Equal(t, []string{"a1", "false", "positive"}, exec.args[4])

	assert.Contains(t, out, helpLoggedOut)
	assert.Contains(t, out, helpLoggedIn)
	assert.Contains(t, out, "Please log in first")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.True(t, strings.HasSuffix(out, "Bye!\n"))
}

func TestRunREPL_PrintsErrorsAndContinues(t *testing.T) {
	exec := &fakeExec{loggedIn: true, err: errors.New("Invalid credentials")}

	out := runLines(exec, func() string { return "Ann" }, "dashboard", "scanstats", "quit")

	assert.Equal(t, []string{"dashboard", "scanstats"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out, "error: Invalid credentials\n"))
	assert.Contains(t, out, "cdg (Ann)> ")
}

func TestRunREPL_EOFEnds(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("dashboard")), &out)

	assert.Equal(t, []string{"dashboard"}, exec.calls)
}

func TestRunREPL_LogoutGatesCommands(t *testing.T) {
	exec := &fakeExec{loggedIn: true}

	out := runLines(exec, func() string { return "" }, "logout", "history", "exit")

	assert.Equal(t, []string{"logout"}, exec.calls)
	assert.Contains(t, out, "Please log in first")
}

func TestPrompt(t *testing.T) {
	assert.Equal(t, "cdg> ", prompt(""))
	assert.Equal(t, "cdg (Ann Lee)> ", prompt("Ann Lee"))
}

func TestUsageError(t *testing.T) {
	err := usage("ack <id>")
	require.ErrorIs(t, err, errUsage)
	assert.EqualError(t, err, "usage: ack <id>")
}
