package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	errs "github.com/bovicare/bovicare-cli/internal/errors"
	"github.com/bovicare/bovicare-cli/internal/utils"
)

// runShell drives the interactive loop. Views only render; all input comes
// through here so a forced redirect never blocks on a prompt.
func (a *app) runShell(in io.Reader, out io.Writer) error {
	// Keep the prompt in step with identity changes (logins, forced
	// logouts) without polling.
	identities, unsubscribe := a.sessions.Identities()
	defer unsubscribe()
	go func() {
		for identity := range identities {
			if identity == nil {
				a.log.Debug().Msg("identity cleared")
				continue
			}
			a.log.Debug().Str("email", identity.Email).Msg("identity changed")
		}
	}()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s> ", a.promptLabel())
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]

		switch command {
		case "quit", "exit":
			return nil
		case "help":
			printHelp(out)
		case "menu":
			a.printMenu(out)
		case "whoami":
			a.printIdentity(out)
		case "login":
			a.loginCommand(out, scanner, args)
		case "cow":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: cow <id>")
				continue
			}
			a.cowCommand(out, args[0])
		case "logout":
			a.sessions.Logout()
		case "open":
			if len(args) != 1 {
				fmt.Fprintln(out, "usage: open <path>")
				continue
			}
			if err := a.navigator.Navigate(context.Background(), args[0]); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
			}
		default:
			fmt.Fprintf(out, "unknown command %q (try help)\n", command)
		}
	}
}

func (a *app) promptLabel() string {
	identity := a.sessions.CurrentIdentity()
	if identity == nil {
		return "bovicare"
	}
	return fmt.Sprintf("bovicare:%s", identity.Email)
}

func (a *app) loginCommand(out io.Writer, scanner *bufio.Scanner, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(out, "usage: login <email>")
		return
	}
	fmt.Fprint(out, "password: ")
	if !scanner.Scan() {
		return
	}
	password := scanner.Text()

	_, err := a.sessions.Login(context.Background(), args[0], password)
	switch {
	case err == nil:
	case errs.Is(err, errs.ErrAuthentication):
		fmt.Fprintln(out, "invalid email or password")
	case errs.Is(err, errs.ErrRoleUnsupported):
		fmt.Fprintln(out, "this account is served by the mobile application only")
	case errs.Is(err, errs.ErrTokenDecode):
		fmt.Fprintln(out, "login failed: the session token could not be read")
	default:
		fmt.Fprintf(out, "login failed: %v\n", err)
	}
}

// cowCommand prints one animal's health record: history, aggregate stats and
// the recent temperature curve.
func (a *app) cowCommand(out io.Writer, arg string) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintln(out, "usage: cow <numeric id>")
		return
	}
	if a.sessions.CurrentIdentity() == nil {
		fmt.Fprintln(out, "not logged in")
		return
	}
	ctx := context.Background()

	cow, err := a.apiClient.Cows().Get(ctx, id)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(out, "%s (%s), health score %.1f\n",
		cow.Name, cow.TagID, utils.Value(cow.HealthScore))

	events, err := a.apiClient.Cows().HealthHistory(ctx, id)
	if err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
		return
	}
	for _, event := range events {
		fmt.Fprintf(out, "  %s  %-12s %s\n",
			event.CreatedAt.Format("2006-01-02"), event.EventType, event.Details)
	}

	stats, err := a.apiClient.Measures().Stats(ctx, id, "7d")
	if err == nil {
		fmt.Fprintf(out, "temperature over %s: avg %.1f, min %.1f, max %.1f\n",
			stats.Period, stats.Avg, stats.Min, stats.Max)
	}
	graph, err := a.apiClient.Measures().Graph(ctx, id, "temperature", "24h")
	if err == nil && len(graph.Points) > 0 {
		fmt.Fprintf(out, "last 24h, %d samples, latest %.1f°C\n",
			len(graph.Points), graph.Points[len(graph.Points)-1].Value)
	}
	recent, err := a.apiClient.Measures().List(ctx, id, 1)
	if err == nil {
		fmt.Fprintf(out, "%d readings on record\n", recent.Total)
	}
}

func (a *app) printMenu(out io.Writer) {
	entries := a.navigator.Menu(a.sessions.CurrentIdentity())
	for _, entry := range entries {
		fmt.Fprintf(out, "  %-24s %s\n", entry.Path, entry.Title)
	}
}

func (a *app) printIdentity(out io.Writer) {
	identity := a.sessions.CurrentIdentity()
	if identity == nil {
		fmt.Fprintln(out, "not logged in")
		return
	}
	fmt.Fprintf(out, "%s <%s> role=%s authenticated=%t\n",
		identity.FullName, identity.Email, identity.Role, a.sessions.IsAuthenticated())
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, `commands:
  login <email>   log in (password is prompted)
  logout          clear the session
  open <path>     navigate to a view
  cow <id>        show one animal's health record
  menu            list the views your role may enter
  whoami          show the current identity
  quit            leave`)
}
