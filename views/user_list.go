package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bovicare/bovicare-cli/api"
	"github.com/bovicare/bovicare-cli/internal/utils"
)

// UserListView lists platform accounts (admin only).
type UserListView struct {
	Users *api.UsersAPI
}

func (v UserListView) Render(ctx context.Context, w io.Writer) error {
	users, err := v.Users.List(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEMAIL\tNAME\tROLE\tACTIVE")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%t\n",
			user.ID, user.Email, user.FullName, user.Role, utils.Value(user.Active))
	}
	return tw.Flush()
}
