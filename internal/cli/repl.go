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
	Add(ctx context.Context) error
	Update(ctx context.Context) error
	Delete(ctx context.Context) error
	List(ctx context.Context) error
	Past(ctx context.Context) error
	AddTask(ctx context.Context) error
	CompleteTask(ctx context.Context) error
	RemoveTask(ctx context.Context) error
	Tasks(ctx context.Context) error
	Undo(ctx context.Context) error
	History(ctx context.Context) error
	Reminders(ctx context.Context) error
	Sweep(ctx context.Context) error
	Export(ctx context.Context) error
}

const helpText = "Available commands: add, update, delete, (l)ist, past, " +
	"addtask, donetask, rmtask, tasks, undo, history, reminders, sweep, export, exit"

// runREPL starts a simple read–eval–print loop for the agenda CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("agenda (%s) > ", statusFn()))
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
			printlnFn(helpText)

		case "add":
			_ = a.Add(ctx)

		case "update":
			_ = a.Update(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "past":
			_ = a.Past(ctx)

		case "addtask":
			_ = a.AddTask(ctx)

		case "donetask":
			_ = a.CompleteTask(ctx)

		case "rmtask":
			_ = a.RemoveTask(ctx)

		case "tasks":
			_ = a.Tasks(ctx)

		case "undo":
			_ = a.Undo(ctx)

		case "history":
			_ = a.History(ctx)

		case "reminders":
			_ = a.Reminders(ctx)

		case "sweep":
			_ = a.Sweep(ctx)

		case "export":
			_ = a.Export(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
