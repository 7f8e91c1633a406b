package cli

import "context"

func (a *App) getStatus(ctx context.Context) func() string {
	return func() string {
		if a.isLoggedIn(ctx) {
			return "(token)"
		}
		return ""
	}
}

// Root prints a greeting and runs the REPL over the app's input.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to authboot CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus(ctx), a.reader)
}
