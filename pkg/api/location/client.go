// Package location looks up police stations for address assistance.
package location

import (
	"context"

	"github.com/matzehuels/steadfast/pkg/api"
)

// PoliceStation is a station known to the courier network.
type PoliceStation struct {
	ID       api.ID `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// PoliceStationList is the response of the police station endpoint.
type PoliceStationList struct {
	Data []PoliceStation `json:"data"`
}

// Client reads location data.
type Client struct {
	api *api.Client
}

// NewClient returns a location client on top of the shared transport.
func NewClient(c *api.Client) *Client {
	return &Client{api: c}
}

// PoliceStations returns all police stations.
func (c *Client) PoliceStations(ctx context.Context) (*PoliceStationList, error) {
	var l PoliceStationList
	if err := c.api.Get(ctx, "/location/police-stations", &l); err != nil {
		return nil, err
	}
	if l.Data == nil {
		l.Data = []PoliceStation{}
	}
	return &l, nil
}
