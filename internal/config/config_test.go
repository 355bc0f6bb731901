package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, "Task Master MCP Server", c.Server.Name)
	assert.Equal(t, "1.0.0", c.Server.Version)
	assert.Equal(t, "127.0.0.1", c.Server.Host)
	assert.Equal(t, 8000, c.Server.Port)
	assert.Equal(t, "instabids", c.Auth.Username)
	assert.Equal(t, "secure123password", c.Auth.Password)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskmaster.yml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  port: 9000\nauth:\n  username: alice\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, c.Server.Port)
	assert.Equal(t, "alice", c.Auth.Username)
	assert.Equal(t, "Task Master MCP Server", c.Server.Name)
	assert.Equal(t, "secure123password", c.Auth.Password)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("TASKMASTER_USERNAME", "envuser")
	t.Setenv("TASKMASTER_PASSWORD", "envpass")
	t.Setenv("TASKMASTER_PORT", "8123")

	c := FromEnv()

	assert.Equal(t, "envuser", c.Auth.Username)
	assert.Equal(t, "envpass", c.Auth.Password)
	assert.Equal(t, 8123, c.Server.Port)
}

func TestFromEnv_IgnoresBadPort(t *testing.T) {
	t.Setenv("TASKMASTER_PORT", "not-a-number")

	c := FromEnv()
	assert.Equal(t, 8000, c.Server.Port)
}
