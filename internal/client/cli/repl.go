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
	isLoggedIn(ctx context.Context) bool
	Register(ctx context.Context) error
	ShowToken(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Heading(ctx context.Context, text string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the authboot CLI.
//
// Lines are read from reader, the same reader command prompts use, so no
// input is buffered twice. The first word is the command. The loop exits on
// EOF, on context cancellation, or when the user types "exit" or "quit".
//
//	help             show available commands
//	register         create an account
//	token            print the stored access token
//	whoami           print the token's claims
//	heading <text>   rewrite the page heading
//	logout           wipe local storage
//	exit | quit      leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("ab%s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		if cmd == "" {
			continue
		}

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: token, whoami, heading <text>, logout, exit")
			} else {
				printlnFn("Available commands: register, heading <text>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "token":
			_ = a.ShowToken(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "heading":
			_ = a.Heading(ctx, rest)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
