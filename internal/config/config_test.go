// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

package config_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/fashionshop/api/internal/config"
)

// runWithArgs builds a config from a CLI invocation with the given args.
func runWithArgs(t *testing.T, args ...string) *config.Config {
	t.Helper()

	var cfg *config.Config
	cmd := &cli.Command{
		Name:  "test",
		Flags: config.Flags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg = config.NewFromCLI(cmd)
			return nil
		},
	}

	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := runWithArgs(t)

	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "http://localhost:8080", cfg.Server.BaseURL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "./data/shop.db", cfg.Database.DSN)
	assert.Equal(t, 587, cfg.SMTP.Port)
	assert.True(t, cfg.SMTP.TLS)
}

func TestFrontendURLFallsBackToBaseURL(t *testing.T) {
	cfg := runWithArgs(t, "--base-url", "https://shop.example.com")

	assert.Equal(t, "https://shop.example.com", cfg.Auth.FrontendURL)
}

func TestFrontendURLExplicit(t *testing.T) {
	cfg := runWithArgs(t, "--frontend-url", "https://www.example.com")

	assert.Equal(t, "https://www.example.com", cfg.Auth.FrontendURL)
}

func TestValidate(t *testing.T) {
	cfg := runWithArgs(t,
		"--access-token-secret", "access-secret",
		"--refresh-token-secret", "refresh-secret",
	)

	require.NoError(t, cfg.Validate())
}

func TestValidate_MissingSecrets(t *testing.T) {
	cfg := runWithArgs(t)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token secret")
}

func TestValidate_SharedSecret(t *testing.T) {
	cfg := runWithArgs(t,
		"--access-token-secret", "same",
		"--refresh-token-secret", "same",
	)

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "independent")
}

func TestIsLocalhost(t *testing.T) {
	assert.True(t, config.IsLocalhost("localhost"))
	assert.True(t, config.IsLocalhost("127.0.0.1"))
	assert.True(t, config.IsLocalhost("app.localhost"))
	assert.False(t, config.IsLocalhost("shop.example.com"))
}
