// Package views holds the terminal screens mounted by the navigator. They
// are thin glue: fetch through a typed API client, render with tabwriter.
package views

import (
	"context"
	"fmt"
	"io"
)

// LoginView is the public entry screen. Credential input happens in the
// shell (`login <email>`), not here, so redirects never block on a prompt.
type LoginView struct{}

func (LoginView) Render(_ context.Context, w io.Writer) error {
	_, err := fmt.Fprintln(w, "BoviCare — please log in (login <email>)")
	return err
}
