package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error
	Analyze(ctx context.Context, files []string) error
	History(ctx context.Context) error
	Cases(ctx context.Context, args []string) error
	Flag(ctx context.Context, caseID string) error
	Show(ctx context.Context, caseID string) error
	Preview(ctx context.Context, caseID, path string) error
	Messages(ctx context.Context, caseID string) error
	Send(ctx context.Context, caseID, text string) error
	Watch(ctx context.Context, caseID string) error
}

const (
	helpSignedOut = "Available commands: register, login, forgot, reset, exit"
	helpSignedIn  = "Available commands: analyze <file>..., history, cases [-flagged] [-sort order] [condition], " +
		"show <id>, preview <id> <file>, flag <id>, messages <id>, send <id> <text>, watch <id>, profile, logout, exit"
)

// runREPL starts a simple read-eval-print loop for the DermaSight CLI.
//
// It reads a line from in, parses the first token as the command, and
// dispatches to methods on 'a'. Commands that need arguments print their
// usage when called without them. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, in *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("ds%s> ", statusFn()))
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "profile":
			cmdErr = a.Profile(ctx)

		case "forgot":
			cmdErr = a.Forgot(ctx)

		case "reset":
			cmdErr = a.Reset(ctx)

		case "analyze":
			if len(args) == 0 {
				printlnFn("Usage: analyze <file>...")
				continue
			}
			cmdErr = a.Analyze(ctx, args)

		case "history":
			cmdErr = a.History(ctx)

		case "cases":
			cmdErr = a.Cases(ctx, args)

		case "flag", "show", "messages", "watch":
			if len(args) != 1 {
				printlnFn(fmt.Sprintf("Usage: %s <case id>", cmd))
				continue
			}
			cmdErr = dispatchCase(ctx, a, cmd, args[0])

		case "preview":
			if len(args) != 2 {
				printlnFn("Usage: preview <case id> <file>")
				continue
			}
			cmdErr = a.Preview(ctx, args[0], args[1])

		case "send":
			if len(args) < 2 {
				printlnFn("Usage: send <case id> <text>")
				continue
			}
			cmdErr = a.Send(ctx, args[0], strings.Join(args[1:], " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		if err != nil {
			return
		}
	}
}

func dispatchCase(ctx context.Context, a execIface, cmd, caseID string) error {
	switch cmd {
	case "flag":
		return a.Flag(ctx, caseID)
	case "show":
		return a.Show(ctx, caseID)
	case "messages":
		return a.Messages(ctx, caseID)
	default:
		return a.Watch(ctx, caseID)
	}
}
