package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var cfg Config
	cfg.LoadDefaults()

	require.Equal(t, "https://www.googleapis.com/drive/v3", cfg.APIBaseURL)
	require.Equal(t, "https://www.googleapis.com/upload/drive/v3", cfg.UploadBaseURL)
	require.Equal(t, "https://oauth2.googleapis.com/token", cfg.TokenURL)
	require.Equal(t, "https://www.googleapis.com/oauth2/v2/userinfo", cfg.AccountInfoURL)
	require.Equal(t, "wecare", cfg.RootFolderName)
	require.Equal(t, int64(100<<20), cfg.MaxUploadSize)
	require.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		var cfg Config
		cfg.LoadDefaults()
		return &cfg
	}

	t.Run("defaults pass", func(t *testing.T) {
		require.NoError(t, Validate(valid()))
	})

	t.Run("bad api url", func(t *testing.T) {
		cfg := valid()
		cfg.APIBaseURL = "not a url"
		err := Validate(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "APIBaseURL")
	})

	t.Run("missing root folder name", func(t *testing.T) {
		cfg := valid()
		cfg.RootFolderName = ""
		require.Error(t, Validate(cfg))
	})

	t.Run("bad log level", func(t *testing.T) {
		cfg := valid()
		cfg.LogLevel = "verbose"
		err := Validate(cfg)
		require.Error(t, err)
		require.Contains(t, err.Error(), "LogLevel")
	})

	t.Run("non-positive upload ceiling", func(t *testing.T) {
		cfg := valid()
		cfg.MaxUploadSize = 0
		require.Error(t, Validate(cfg))
	})
}

func TestLoadConfig_FlagOverlay(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"wecare", "-r", "family-docs", "-m", "10", "-l", "debug"}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "family-docs", cfg.RootFolderName)
	require.Equal(t, int64(10<<20), cfg.MaxUploadSize)
	require.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep defaults.
	require.Equal(t, "https://www.googleapis.com/drive/v3", cfg.APIBaseURL)
}

func TestLoadConfig_EnvOverlay(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"wecare"}

	t.Setenv("WECARE_CLIENT_ID", "client-from-env")
	t.Setenv("WECARE_CLIENT_SECRET", "secret-from-env")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "client-from-env", cfg.ClientID)
	require.Equal(t, "secret-from-env", cfg.ClientSecret)
}
