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
	Sync(ctx context.Context) error
	List(ctx context.Context, filter string) error
	Categories(ctx context.Context) error
	Assign(ctx context.Context, idxArg, categoryArg string) error
	Clear(ctx context.Context, idxArg string) error
	Suggest(ctx context.Context, idxArg string) error
}

// runREPL starts a simple read–eval–print loop for the DocSync Hub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help             — show available commands
//	  - login            — sign in with Google
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - sync             — refresh the document list
//	  - list [doc|sheet|term] — list documents, filtered by kind or name
//	  - categories       — show the category set
//	  - assign <n> <cat> — assign a category to document n
//	  - clear <n>        — clear document n's category
//	  - suggest <n>      — ask for a category suggestion for document n
//	  - logout           — sign out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("docsync %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: sync, (l)ist [doc|sheet|term], categories, assign <n> <category>, clear <n>, suggest <n>, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "l", "list":
			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}
			_ = a.List(ctx, filter)

		case "categories":
			_ = a.Categories(ctx)

		case "assign":
			if len(args) < 2 {
				printlnFn("Usage: assign <n> <category>")
				continue
			}
			_ = a.Assign(ctx, args[0], strings.Join(args[1:], " "))

		case "clear":
			if len(args) < 1 {
				printlnFn("Usage: clear <n>")
				continue
			}
			_ = a.Clear(ctx, args[0])

		case "suggest":
			if len(args) < 1 {
				printlnFn("Usage: suggest <n>")
				continue
			}
			_ = a.Suggest(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
