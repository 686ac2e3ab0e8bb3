package restapi

import (
	"context"
	"net/http"
)

// WardStat is a ward's capacity snapshot for the dashboard gauges.
type WardStat struct {
	Ward     string `json:"ward"`
	Capacity int    `json:"capacity"`
	Occupied int    `json:"occupied"`
}

// WardInput creates a new ward.
type WardInput struct {
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// WardStats returns per-ward occupancy. Available to every authenticated role.
func (c *Client) WardStats(ctx context.Context) ([]WardStat, error) {
	var stats []WardStat
	if err := c.do(ctx, http.MethodGet, "/wards/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// CreateWard adds a ward. Admin-only server-side.
func (c *Client) CreateWard(ctx context.Context, input WardInput) error {
	return c.do(ctx, http.MethodPost, "/admin/wards", nil, input, nil)
}

// Users lists staff accounts. Admin-only server-side.
func (c *Client) Users(ctx context.Context) ([]UserSummary, error) {
	var users []UserSummary
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
