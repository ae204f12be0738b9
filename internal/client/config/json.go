package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/wecareapp/driveclient/internal/flagx"
	"github.com/wecareapp/driveclient/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds. Only non-zero values are copied into the
// runtime Config, so the JSON file may set just the fields it cares about.
type JsonConfig struct {
	APIBaseURL     string         `json:"api_base_url"`
	UploadBaseURL  string         `json:"upload_base_url"`
	TokenURL       string         `json:"token_url"`
	AccountInfoURL string         `json:"account_info_url"`
	RootFolderName string         `json:"root_folder_name"`
	MaxUploadSize  int64          `json:"max_upload_size"`
	HTTPTimeout    timex.Duration `json:"http_timeout"`
	LogLevel       string         `json:"log_level"`
	ClientID       string         `json:"client_id"`
	ClientSecret   string         `json:"client_secret"`
}

// parseJson overlays cfg with values from the JSON file named by the -c or
// -config flag. When neither flag is given, nothing is loaded. Read or
// unmarshal errors panic; the config layer runs before anything else and a
// broken config file should stop the program immediately.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.UploadBaseURL != "" {
		cfg.UploadBaseURL = jc.UploadBaseURL
	}
	if jc.TokenURL != "" {
		cfg.TokenURL = jc.TokenURL
	}
	if jc.AccountInfoURL != "" {
		cfg.AccountInfoURL = jc.AccountInfoURL
	}
	if jc.RootFolderName != "" {
		cfg.RootFolderName = jc.RootFolderName
	}
	if jc.MaxUploadSize > 0 {
		cfg.MaxUploadSize = jc.MaxUploadSize
	}
	if jc.HTTPTimeout.Duration > 0 {
		cfg.HTTPTimeout = time.Duration(jc.HTTPTimeout.Duration)
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
	if jc.ClientID != "" {
		cfg.ClientID = jc.ClientID
	}
	if jc.ClientSecret != "" {
		cfg.ClientSecret = jc.ClientSecret
	}
}
