package config

import (
	"flag"
	"os"

	"github.com/wecareapp/driveclient/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-b string   provider API base URL
//	-u string   provider upload base URL
//	-r string   root folder name on the provider
//	-m int      max upload size in MiB
//	-l string   log level (debug|info|warn|error)
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-b", "-u", "-r", "-m", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "b", cfg.APIBaseURL, "provider API base URL")
	fs.StringVar(&cfg.UploadBaseURL, "u", cfg.UploadBaseURL, "provider upload base URL")
	fs.StringVar(&cfg.RootFolderName, "r", cfg.RootFolderName, "root folder name")
	maxUploadMiB := fs.Int64("m", cfg.MaxUploadSize>>20, "max upload size (MiB)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MaxUploadSize = *maxUploadMiB << 20
}

// parseEnv overlays secrets from the environment:
//
//	WECARE_CLIENT_ID, WECARE_CLIENT_SECRET
//
// Secrets are environment-only by default so they stay out of config files
// and shell history.
func parseEnv(cfg *Config) {
	if v := os.Getenv("WECARE_CLIENT_ID"); v != "" {
		cfg.ClientID = v
	}
	if v := os.Getenv("WECARE_CLIENT_SECRET"); v != "" {
		cfg.ClientSecret = v
	}
}
