package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Database: DatabaseConfig{Driver: "postgres", DSN: "postgres://localhost/farmdesk"},
		Server:   ServerConfig{GRPCAddr: ":8080"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestValidatePostgresRequiresDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.DSN = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "DB_URL")
}

func TestValidateSQLiteNeedsNoDSN(t *testing.T) {
	// the sqlite driver falls back to an in-memory database
	cfg := validConfig()
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = ""
	require.NoError(t, cfg.Validate())
}

func TestValidateAPIKeyIsOptional(t *testing.T) {
	// no key means pattern-only extraction, not a startup failure
	cfg := validConfig()
	cfg.AI.APIKey = ""
	require.NoError(t, cfg.Validate())
}

func TestValidateRequiresGRPCAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Server.GRPCAddr = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
