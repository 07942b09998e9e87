package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bovicare/bovicare-cli/api"
)

// AlertListView lists health alerts, optionally filtered.
type AlertListView struct {
	Alerts  *api.AlertsAPI
	Filters api.AlertFilters
}

func (v AlertListView) Render(ctx context.Context, w io.Writer) error {
	alerts, err := v.Alerts.List(ctx, v.Filters)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOW\tTYPE\tSEVERITY\tSTATUS\tMESSAGE")
	for _, alert := range alerts {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
			alert.ID, alert.CowID, alert.AlertType, alert.Severity, alert.Status, alert.Message)
	}
	return tw.Flush()
}
