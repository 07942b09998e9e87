package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// MeasuresAPI wraps the /measures endpoints.
type MeasuresAPI struct {
	c *Client
}

func (m *MeasuresAPI) List(ctx context.Context, cowID int64, page int) (MeasurePage, error) {
	if page <= 0 {
		page = 1
	}
	query := url.Values{}
	query.Set("cow_id", strconv.FormatInt(cowID, 10))
	query.Set("page", strconv.Itoa(page))

	var result MeasurePage
	if err := m.c.get(ctx, "/measures", query, &result); err != nil {
		return MeasurePage{}, err
	}
	return result, nil
}

func (m *MeasuresAPI) Latest(ctx context.Context, cowID int64) (Measure, error) {
	var measure Measure
	if err := m.c.get(ctx, fmt.Sprintf("/measures/%d/latest", cowID), nil, &measure); err != nil {
		return Measure{}, err
	}
	return measure, nil
}

func (m *MeasuresAPI) Stats(ctx context.Context, cowID int64, period string) (MeasureStats, error) {
	if period == "" {
		period = "24h"
	}
	query := url.Values{}
	query.Set("period", period)

	var stats MeasureStats
	if err := m.c.get(ctx, fmt.Sprintf("/measures/%d/stats", cowID), query, &stats); err != nil {
		return MeasureStats{}, err
	}
	return stats, nil
}

func (m *MeasuresAPI) Graph(ctx context.Context, cowID int64, parameter, period string) (GraphData, error) {
	if period == "" {
		period = "24h"
	}
	query := url.Values{}
	query.Set("parameter", parameter)
	query.Set("period", period)

	var data GraphData
	if err := m.c.get(ctx, fmt.Sprintf("/measures/%d/graph", cowID), query, &data); err != nil {
		return GraphData{}, err
	}
	return data, nil
}
