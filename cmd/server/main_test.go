package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRootCmd_RejectsUnsupportedTransport(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--transport", "websocket"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.EqualError(t, err, "transport websocket not supported")
}

func TestRootCmd_RejectsMissingConfigFile(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", "/definitely/not/here.yml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestLoadConfig_EmptyPathUsesEnvDefaults(t *testing.T) {
	t.Setenv("TASKMASTER_USERNAME", "cli-user")

	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "cli-user", cfg.Auth.Username)
	assert.Equal(t, 8000, cfg.Server.Port)
}
