package config

import (
	"net"
	"strconv"
)

// MetricsConfig controls the Prometheus collectors and the endpoint served by
// `starship metrics serve`. When disabled, no collector is registered and
// engagements, commissions and repairs are not counted.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// Listener of the metrics endpoint, localhost by default
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Scrape path exposing the starship_* series
	Path string `mapstructure:"path" validate:"omitempty,startswith=/"`
}

// Address is the host:port the metrics server listens on
func (c MetricsConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
