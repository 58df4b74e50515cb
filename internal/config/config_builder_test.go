package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags replaces the global flag set so ParseFlags can be invoked more
// than once across tests in this package.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldArgs := os.Args
	oldCommandLine := flag.CommandLine
	t.Cleanup(func() {
		os.Args = oldArgs
		flag.CommandLine = oldCommandLine
	})
	os.Args = append([]string{"todo-api-test"}, args...)
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
}

func TestBuild_DefaultsOnly(t *testing.T) {
	resetFlags(t)

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, DefaultBaseURL, cfg.App.BaseURL)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.TokenSignKey, "sign key has no default on purpose")
}

func TestBuild_EnvBeatsDefaults(t *testing.T) {
	resetFlags(t)
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-secret")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	// untouched fields still fall back
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
}

func TestBuild_EnvBeatsFlags(t *testing.T) {
	resetFlags(t, "-a", ":7070", "-d", "flag.db")
	t.Setenv("SERVER_ADDRESS", ":8080")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.HTTPAddress, "env wins over flags")
	assert.Equal(t, "flag.db", cfg.Storage.DB.DSN, "flag fills what env left unset")
}

func TestBuild_JSONFileMergedLast(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"base_url": "http://json.example.com"},
		"server": {"http_address": ":6060"}
	}`)
	resetFlags(t, "-c", path, "-a", ":7070")

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.HTTPAddress, "flag wins over json")
	assert.Equal(t, "http://json.example.com", cfg.App.BaseURL)
}

func TestValidate(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App: App{
				TokenIssuer:   "todo-api",
				TokenDuration: 30 * time.Minute,
				BaseURL:       "http://localhost:3000",
			},
			Storage: Storage{DB: DB{DSN: "todos.db"}},
			Server:  Server{HTTPAddress: ":3000"},
		}
	}

	t.Run("valid config passes", func(t *testing.T) {
		assert.NoError(t, valid().validate())
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid()
		cfg.Server.HTTPAddress = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidServerConfigs)
	})

	t.Run("missing dsn", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.DB.DSN = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("zero token duration", func(t *testing.T) {
		cfg := valid()
		cfg.App.TokenDuration = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("missing sign key is allowed", func(t *testing.T) {
		cfg := valid()
		cfg.App.TokenSignKey = ""
		assert.NoError(t, cfg.validate())
	})
}
