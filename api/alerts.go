package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// AlertsAPI wraps the /alerts endpoints.
type AlertsAPI struct {
	c *Client
}

func (a *AlertsAPI) List(ctx context.Context, filters AlertFilters) ([]Alert, error) {
	query := url.Values{}
	if filters.Status != "" {
		query.Set("status", filters.Status)
	}
	if filters.Severity != "" {
		query.Set("severity", filters.Severity)
	}
	if filters.CowID != 0 {
		query.Set("cow_id", strconv.FormatInt(filters.CowID, 10))
	}

	var alerts []Alert
	if err := a.c.get(ctx, "/alerts", query, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (a *AlertsAPI) Get(ctx context.Context, id int64) (Alert, error) {
	var alert Alert
	if err := a.c.get(ctx, fmt.Sprintf("/alerts/%d", id), nil, &alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}

// Acknowledge marks the alert as seen by an operator.
func (a *AlertsAPI) Acknowledge(ctx context.Context, id int64) (Alert, error) {
	var alert Alert
	if err := a.c.post(ctx, fmt.Sprintf("/alerts/%d/acknowledge", id), struct{}{}, &alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}

// Resolve closes the alert with operator notes.
func (a *AlertsAPI) Resolve(ctx context.Context, id int64, notes string) (Alert, error) {
	body := struct {
		ResolutionNotes string `json:"resolution_notes"`
	}{ResolutionNotes: notes}

	var alert Alert
	if err := a.c.post(ctx, fmt.Sprintf("/alerts/%d/resolve", id), body, &alert); err != nil {
		return Alert{}, err
	}
	return alert, nil
}
