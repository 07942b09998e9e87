package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bovicare/bovicare-cli/api"
)

// AdminDashboardView shows the platform-wide user statistics.
type AdminDashboardView struct {
	Users *api.UsersAPI
}

func (v AdminDashboardView) Render(ctx context.Context, w io.Writer) error {
	stats, err := v.Users.Stats(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "── Admin dashboard ──")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Users total\t%d\n", stats.TotalUsers)
	fmt.Fprintf(tw, "Active\t%d\n", stats.ActiveUsers)
	fmt.Fprintf(tw, "Inactive\t%d\n", stats.InactiveUsers)
	fmt.Fprintf(tw, "Admins\t%d\n", stats.UsersByRole.Admin)
	fmt.Fprintf(tw, "Agronomes\t%d\n", stats.UsersByRole.Agronome)
	fmt.Fprintf(tw, "Eleveurs\t%d\n", stats.UsersByRole.Eleveur)
	return tw.Flush()
}
