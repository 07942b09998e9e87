package views

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/bovicare/bovicare-cli/api"
	errs "github.com/bovicare/bovicare-cli/internal/errors"
	"github.com/bovicare/bovicare-cli/internal/utils"
)

// HerdHealthView lists each cow with its latest sensor reading, one page at
// a time.
type HerdHealthView struct {
	Cows     *api.CowsAPI
	Measures *api.MeasuresAPI
	Page     int
	PageSize int
}

func (v HerdHealthView) Render(ctx context.Context, w io.Writer) error {
	page, err := v.Cows.List(ctx, v.Page, v.PageSize)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TAG\tNAME\tHEALTH\tTEMP\tHEART\tMEASURED")
	for _, cow := range page.Items {
		latest, err := v.Measures.Latest(ctx, cow.ID)
		if errs.Is(err, errs.ErrNotFound) {
			fmt.Fprintf(tw, "%s\t%s\t%.1f\t-\t-\t-\n",
				cow.TagID, cow.Name, utils.Value(cow.HealthScore))
			continue
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%s\t%.1f\t%.1f°C\t%d bpm\t%s\n",
			cow.TagID, cow.Name, utils.Value(cow.HealthScore),
			latest.Temperature, latest.HeartRate, latest.MeasuredAt.Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "page %d, %d total\n", page.Page, page.Total)
	return err
}
