package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Refresh(ctx context.Context) error
	Status(ctx context.Context) error
	Init(ctx context.Context) error
	Upload(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Download(ctx context.Context) error
	Update(ctx context.Context) error
	Rename(ctx context.Context) error
	Delete(ctx context.Context) error
	ProfileSet(ctx context.Context) error
	ProfileShow(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the wecare CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	printlnFn("Welcome to wecare CLI (type 'help' for commands)")
	for {
		printlnFn(fmt.Sprintf("wecare %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: upload, (l)ist, show, download, update, rename, delete, profile, profileset, status, init, refresh, logout, exit")
			} else {
				printlnFn("Available commands: login, refresh, status, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "status":
			_ = a.Status(ctx)

		case "init":
			_ = a.Init(ctx)

		case "upload":
			_ = a.Upload(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "download":
			_ = a.Download(ctx)

		case "update":
			_ = a.Update(ctx)

		case "rename":
			_ = a.Rename(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "profile":
			_ = a.ProfileShow(ctx)

		case "profileset":
			_ = a.ProfileSet(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
