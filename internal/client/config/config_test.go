package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	old := os.Args
	os.Args = append([]string{"waterbill-cli"}, args...)
	t.Cleanup(func() { os.Args = old })
}

func TestLoadConfig_Defaults(t *testing.T) {
	withArgs(t)
	t.Setenv("WATERBILL_CONFIG", "")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, ".waterbill", c.TokenDir)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
}

func TestLoadConfig_JSONThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cli.json")
	b, err := json.Marshal(map[string]any{
		"server_endpoint_addr": "10.0.0.1:50051",
		"token_dir":            "/tmp/wb",
		"request_timeout":      "5s",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	withArgs(t, "bills", "unpaid", "-c", path)
	t.Setenv("WATERBILL_CLI_SERVER", "10.0.0.2:50051")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.2:50051", c.ServerEndpointAddr)
	assert.Equal(t, "/tmp/wb", c.TokenDir)
	assert.Equal(t, 5*time.Second, c.RequestTimeout)
}

func TestLoadConfig_Errors(t *testing.T) {
	withArgs(t, "-config", filepath.Join(t.TempDir(), "missing.json"))
	_, err := LoadConfig()
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	withArgs(t, "-config", bad)
	_, err = LoadConfig()
	assert.Error(t, err)

	withArgs(t)
	t.Setenv("WATERBILL_CONFIG", "")
	t.Setenv("WATERBILL_CLI_REQUEST_TIMEOUT", "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}
