package main

import (
	"testing"

	"resident_service/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DIRECTORY_BACKEND", "static")
	t.Setenv("SESSION_SECRET", "s3cret")

	require.NoError(t, serveCmd.Flags().Set("port", "9090"))
	require.NoError(t, serveCmd.Flags().Set("directory", config.DirectoryDynamoDB))
	require.NoError(t, serveCmd.Flags().Set("advisory-mock", "true"))
	t.Cleanup(func() {
		for _, name := range []string{"port", "directory", "advisory-mock"} {
			serveCmd.Flags().Lookup(name).Changed = false
		}
		portFlag, directoryFlag, advisoryMock = "", "", false
	})

	cfg, err := loadConfig(serveCmd)
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, config.DirectoryDynamoDB, cfg.Directory.Backend)
	assert.True(t, cfg.Advisory.Mock)
	assert.Equal(t, "s3cret", cfg.Session.Secret)
}

func TestLoadConfig_RejectsInvalidOverride(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s3cret")

	require.NoError(t, serveCmd.Flags().Set("directory", "postgres"))
	t.Cleanup(func() {
		serveCmd.Flags().Lookup("directory").Changed = false
		directoryFlag = ""
	})

	_, err := loadConfig(serveCmd)
	require.Error(t, err)
}
