package cli

import (
	"bufio"
	"context"
	"net/http"
	"os"

	"github.com/wecareapp/driveclient/internal/client/config"
	"github.com/wecareapp/driveclient/internal/drive"
	"github.com/wecareapp/driveclient/internal/logging"
)

type App struct {
	config   *config.Config
	service  drive.DocumentService
	log      logging.Logger
	reader   *bufio.Reader
	loggedIn bool
}

func NewApp(c *config.Config) (*App, error) {
	log := logging.NewDefault(c.LogLevel)

	httpClient := &http.Client{Timeout: c.HTTPTimeout}
	service := drive.New(drive.Config{
		APIBaseURL:     c.APIBaseURL,
		UploadBaseURL:  c.UploadBaseURL,
		TokenURL:       c.TokenURL,
		AccountInfoURL: c.AccountInfoURL,
		RootFolderName: c.RootFolderName,
		MaxUploadSize:  c.MaxUploadSize,
		ClientID:       c.ClientID,
		ClientSecret:   c.ClientSecret,
	}, httpClient, log)

	return &App{
		config:  c,
		service: service,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.loggedIn
}

// Run starts the interactive loop and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) getStatus() string {
	if a.loggedIn {
		return "(authenticated)"
	}
	return ""
}
