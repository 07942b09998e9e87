package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bovicare/bovicare-cli/api"
	"github.com/bovicare/bovicare-cli/internal/utils"
)

// CowListView lists the herd, one page at a time.
type CowListView struct {
	Cows     *api.CowsAPI
	Page     int
	PageSize int
}

func (v CowListView) Render(ctx context.Context, w io.Writer) error {
	page, err := v.Cows.List(ctx, v.Page, v.PageSize)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTAG\tNAME\tBREED\tHEALTH")
	for _, cow := range page.Items {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\n",
			cow.ID, cow.TagID, cow.Name, cow.Breed, utils.Value(cow.HealthScore))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "page %d, %d total\n", page.Page, page.Total)
	return err
}
