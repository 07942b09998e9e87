package views

import (
	"context"
	"fmt"
	"io"

	"github.com/bovicare/bovicare-cli/api"
	errs "github.com/bovicare/bovicare-cli/internal/errors"
)

// AgronomeDashboardView summarizes the herd and its open alerts, with the
// latest sensor reading under each alerted cow.
type AgronomeDashboardView struct {
	Cows     *api.CowsAPI
	Alerts   *api.AlertsAPI
	Measures *api.MeasuresAPI
}

func (v AgronomeDashboardView) Render(ctx context.Context, w io.Writer) error {
	herd, err := v.Cows.List(ctx, 1, 1)
	if err != nil {
		return err
	}
	open, err := v.Alerts.List(ctx, api.AlertFilters{Status: api.AlertStatusNew})
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "── Agronome dashboard ──")
	fmt.Fprintf(w, "Herd size: %d\n", herd.Total)
	fmt.Fprintf(w, "Open alerts: %d\n", len(open))
	for _, alert := range open {
		fmt.Fprintf(w, "  [%s] cow %d: %s\n", alert.Severity, alert.CowID, alert.Message)
		latest, err := v.Measures.Latest(ctx, alert.CowID)
		if errs.Is(err, errs.ErrNotFound) {
			continue // no reading yet for this cow
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "      latest: %.1f°C, %d bpm at %s\n",
			latest.Temperature, latest.HeartRate, latest.MeasuredAt.Format("15:04"))
	}
	return nil
}
