package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/dataguard/internal/client/client"
)

func (a *App) getStatus() string {
	return a.userName
}

// Root checks for an existing session, then runs the REPL until the user
// exits or input ends.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to Ciphera Data Guard CLI (type 'help' for commands)")

	a.checkSession(ctx)

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) checkSession(ctx context.Context) {
	u, err := a.authService.Init(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "Signed in as %s\n", a.userName)
		a.logger.Debug(ctx, "session restored", "user_id", u.ID)
	case errors.Is(err, client.ErrUnauthorized):
		a.logger.Debug(ctx, "no active session")
	default:
		a.logger.Warn(ctx, "session check failed", "error", err)
	}
}
