//go:build !integration

package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/guttosm/pantry-service/config"
)

func TestInitializeDatabase(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.DatabaseConfig
	}{
		{
			name: "disabled database returns nil",
			cfg: config.DatabaseConfig{
				Enabled: false,
				URI:     "mongodb://localhost:27017",
			},
		},
		{
			name: "unreachable database returns nil",
			cfg: config.DatabaseConfig{
				Enabled:      true,
				URI:          "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=200&connectTimeoutMS=200",
				DatabaseName: "pantry_test",
				LogsTTL:      30 * 24 * time.Hour,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeDatabase(tt.cfg)
			assert.Nil(t, components, "the service falls back to the in-memory store")
		})
	}
}
