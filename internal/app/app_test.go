//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/pantry-service/config"
)

func TestInitializeApp(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "creates router with default config",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port:       "8080",
					RateLimit:  100,
					RateWindow: time.Minute,
				},
				Consumption: config.ConsumptionConfig{
					SkipExpired:   true,
					DefaultPantry: "default",
				},
			},
		},
		{
			name: "creates router without database",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Database: config.DatabaseConfig{
					Enabled: false,
				},
			},
		},
		{
			name: "creates router with expired batches allowed",
			cfg: config.Config{
				Server: config.ServerConfig{
					Port: "8080",
				},
				Consumption: config.ConsumptionConfig{
					SkipExpired: false,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := InitializeApp(tt.cfg)
			assert.NotNil(t, router)
		})
	}
}
