package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	// Help lists the commands available in the current mode.
	Help() []string
	// Exec runs one command. errUnknownCommand means cmd does not exist in
	// the current mode.
	Exec(ctx context.Context, cmd string, args []string) error
}

// runREPL starts a simple read–eval–print loop for the timeline CLI.
//
// It reads a line from reader, parses the first token as the command and
// hands the rest to a.Exec. Which commands exist depends on whether a user
// is signed in and on their role; "help" lists them. The loop exits on EOF,
// when ctx is cancelled, or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("tl %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printlnFn("Available commands: " + strings.Join(a.Help(), ", ") + ", help, exit")

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if err := a.Exec(ctx, cmd, parts[1:]); errors.Is(err, errUnknownCommand) {
				printlnFn("Unknown command:", cmd)
			}
		}
	}
}
