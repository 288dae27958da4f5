package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var errUsage = errors.New("usage")

func usage(s string) error {
	return fmt.Errorf("%w: %s", errUsage, s)
}

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a recording stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Scan(ctx context.Context, args []string) error
	ScanFile(ctx context.Context, args []string) error
	History(ctx context.Context, args []string) error
	ScanStats(ctx context.Context) error
	Alerts(ctx context.Context, args []string) error
	AlertStats(ctx context.Context) error
	Ack(ctx context.Context, args []string) error
	Resolve(ctx context.Context, args []string) error
	Snooze(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
	Analytics(ctx context.Context, args []string) error
	Overview(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: profile, editprofile, passwd, scan <text>, scanfile <path>, " +
		"history [page], scanstats, alerts [page] [status] [severity], alertstats, ack <id>, resolve <id> [note], " +
		"snooze <id> <minutes>, dashboard, analytics [period] [type], overview [type], logout, exit"
)

func prompt(status string) string {
	if status == "" {
		return "cdg> "
	}
	return fmt.Sprintf("cdg (%s)> ", status)
}

// runREPL reads one command per line from reader and dispatches it to a.
// A failed command prints "error: <message>" and the loop goes on. The loop
// ends on EOF or "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprint(w, prompt(statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			fmt.Fprintln(w, "Bye!")
			return
		}

		if err := dispatch(ctx, a, cmd, args, w); err != nil {
			fmt.Fprintln(w, "error:", err.Error())
		}
	}
}

func dispatch(ctx context.Context, a execIface, cmd string, args []string, w io.Writer) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			fmt.Fprintln(w, helpLoggedIn)
		} else {
			fmt.Fprintln(w, helpLoggedOut)
		}
		return nil
	case "register":
		return a.Register(ctx)
	case "login":
		return a.Login(ctx)
	}

	if !knownCommand(cmd) {
		fmt.Fprintln(w, "Unknown command:", cmd)
		return nil
	}
	if !a.isLoggedIn() {
		fmt.Fprintln(w, "Please log in first")
		return nil
	}

	switch cmd {
	case "logout":
		return a.Logout(ctx)
	case "profile":
		return a.Profile(ctx)
	case "editprofile":
		return a.EditProfile(ctx)
	case "passwd":
		return a.ChangePassword(ctx)
	case "scan":
		return a.Scan(ctx, args)
	case "scanfile":
		return a.ScanFile(ctx, args)
	case "history":
		return a.History(ctx, args)
	case "scanstats":
		return a.ScanStats(ctx)
	case "alerts":
		return a.Alerts(ctx, args)
	case "alertstats":
		return a.AlertStats(ctx)
	case "ack":
		return a.Ack(ctx, args)
	case "resolve":
		return a.Resolve(ctx, args)
	case "snooze":
		return a.Snooze(ctx, args)
	case "dashboard":
		return a.Dashboard(ctx)
	case "analytics":
		return a.Analytics(ctx, args)
	case "overview":
		return a.Overview(ctx, args)
	}
	return nil
}

func knownCommand(cmd string) bool {
	switch cmd {
	case "logout", "profile", "editprofile", "passwd", "scan", "scanfile", "history", "scanstats",
		"alerts", "alertstats", "ack", "resolve", "snooze", "dashboard", "analytics", "overview":
		return true
	}
	return false
}
