package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// CowsAPI wraps the /cows endpoints.
type CowsAPI struct {
	c *Client
}

// CowUpsert is the create/update payload.
type CowUpsert struct {
	TagID     *string  `json:"tag_id,omitempty"`
	Name      *string  `json:"name,omitempty"`
	Breed     *string  `json:"breed,omitempty"`
	BirthDate *string  `json:"birth_date,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Active    *bool    `json:"is_active,omitempty"`
}

func (cw *CowsAPI) List(ctx context.Context, page, pageSize int) (CowPage, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("page_size", strconv.Itoa(pageSize))

	var result CowPage
	if err := cw.c.get(ctx, "/cows", query, &result); err != nil {
		return CowPage{}, err
	}
	return result, nil
}

func (cw *CowsAPI) Get(ctx context.Context, id int64) (Cow, error) {
	var cow Cow
	if err := cw.c.get(ctx, fmt.Sprintf("/cows/%d", id), nil, &cow); err != nil {
		return Cow{}, err
	}
	return cow, nil
}

func (cw *CowsAPI) Create(ctx context.Context, req CowUpsert) (Cow, error) {
	var cow Cow
	if err := cw.c.post(ctx, "/cows", req, &cow); err != nil {
		return Cow{}, err
	}
	return cow, nil
}

func (cw *CowsAPI) Update(ctx context.Context, id int64, req CowUpsert) (Cow, error) {
	var cow Cow
	if err := cw.c.put(ctx, fmt.Sprintf("/cows/%d", id), req, &cow); err != nil {
		return Cow{}, err
	}
	return cow, nil
}

func (cw *CowsAPI) Delete(ctx context.Context, id int64) error {
	return cw.c.delete(ctx, fmt.Sprintf("/cows/%d", id))
}

func (cw *CowsAPI) HealthHistory(ctx context.Context, id int64) ([]HealthEvent, error) {
	var events []HealthEvent
	if err := cw.c.get(ctx, fmt.Sprintf("/cows/%d/health-history", id), nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}
