package restapi

import (
	"context"
	"net/http"
)

// Bed is one bed and its occupancy state.
type Bed struct {
	ID       int    `json:"id"`
	Number   string `json:"number"`
	Ward     string `json:"ward"`
	Occupied bool   `json:"occupied"`
}

// Beds lists every bed.
func (c *Client) Beds(ctx context.Context) ([]Bed, error) {
	var beds []Bed
	if err := c.do(ctx, http.MethodGet, "/beds", nil, nil, &beds); err != nil {
		return nil, err
	}
	return beds, nil
}

// AvailableBeds lists unoccupied beds only.
func (c *Client) AvailableBeds(ctx context.Context) ([]Bed, error) {
	var beds []Bed
	if err := c.do(ctx, http.MethodGet, "/beds/available", nil, nil, &beds); err != nil {
		return nil, err
	}
	return beds, nil
}
