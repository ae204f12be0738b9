package drive

import (
	"context"
	"net/http"
	"time"

	"github.com/wecareapp/driveclient/internal/logging"
)

// DefaultMaxUploadSize is the upload size ceiling applied when the config
// leaves it unset: 100 MiB.
const DefaultMaxUploadSize = 100 << 20

const (
	docsFolderName     = "docs"
	metadataFolderName = "metadata"
	settingsFolderName = "settings"

	folderMimeType = "application/vnd.google-apps.folder"
)

// Config holds the provider endpoints and limits the core operates against.
type Config struct {
	// APIBaseURL is the provider's metadata API base, e.g.
	// "https://www.googleapis.com/drive/v3".
	APIBaseURL string

	// UploadBaseURL is the base for multipart binary uploads, e.g.
	// "https://www.googleapis.com/upload/drive/v3".
	UploadBaseURL string

	// TokenURL is the OAuth token endpoint used for refresh_token grants.
	TokenURL string

	// AccountInfoURL is a lightweight authenticated endpoint used to validate
	// the held token; any non-success status means the token is unusable.
	AccountInfoURL string

	// RootFolderName is the name of the dedicated root folder, "wecare" by
	// convention.
	RootFolderName string

	// MaxUploadSize is the byte ceiling enforced before any network call.
	// Zero means DefaultMaxUploadSize.
	MaxUploadSize int64

	// ClientID / ClientSecret identify this client to the OAuth token
	// endpoint when refreshing access tokens.
	ClientID     string
	ClientSecret string
}

// DocumentService is the surface the core exposes to its collaborators
// (screens, CLI). All blocking operations honor context cancellation; the
// core itself imposes no timeouts or retries.
type DocumentService interface {
	// SetAccessToken stores the bearer token for all subsequent calls.
	SetAccessToken(token string)

	// ClearAccessToken discards the token and the cached folder identifiers,
	// forcing re-provisioning on next authenticated use.
	ClearAccessToken()

	// GetFolderStatus reports a diagnostic snapshot of the session.
	GetFolderStatus() FolderStatus

	// InitializeFolderStructure idempotently resolves or creates the
	// root/docs/metadata/settings hierarchy and caches the identifiers.
	InitializeFolderStructure(ctx context.Context) error

	// UploadFile uploads a payload into the docs folder and writes its
	// sidecar. Failures are reported inside the result, never as an error.
	UploadFile(ctx context.Context, payload FilePayload, opts UploadOptions) UploadResult

	// ListFiles enumerates the docs folder and returns one record per content
	// file, synthesizing fallback records for missing sidecars.
	ListFiles(ctx context.Context) ([]FileRecord, error)

	// GetFileMetadata reads the sidecar for fileID. Absence is reported via
	// the boolean, not as an error.
	GetFileMetadata(ctx context.Context, fileID string) (*FileRecord, bool, error)

	// UpdateMetadata merges partial fields over the existing sidecar,
	// refreshes the modified time, and propagates a name change to the
	// underlying content file on a best-effort basis.
	UpdateMetadata(ctx context.Context, fileID string, upd MetadataUpdate) (*FileRecord, error)

	// UpdateFileName renames a document; shorthand for UpdateMetadata with
	// only the name set.
	UpdateFileName(ctx context.Context, fileID, newName string) (*FileRecord, error)

	// DeleteFile removes a content file and its sidecar as a logical unit.
	// A missing sidecar is treated as already consistent.
	DeleteFile(ctx context.Context, fileID string) error

	// DownloadFile fetches a document's content and its MIME type.
	DownloadFile(ctx context.Context, fileID string) ([]byte, string, error)

	// SaveProfile writes the singleton settings/profile.json object.
	SaveProfile(ctx context.Context, p Profile) error

	// GetProfile reads the singleton profile. Absence is reported via the
	// boolean, not as an error.
	GetProfile(ctx context.Context) (*Profile, bool, error)

	// ValidateToken checks the held token against the account-info endpoint.
	// Returns ErrSessionExpired when the provider rejects it.
	ValidateToken(ctx context.Context) error

	// RefreshAccessToken exchanges a refresh token for a new access token,
	// stores it in the session, and returns it with its lifetime in seconds.
	RefreshAccessToken(ctx context.Context, refreshToken string) (string, int, error)
}

// Service is the concrete DocumentService.
type Service struct {
	cfg        Config
	session    *Session
	exec       *executor
	httpClient *http.Client
	log        logging.Logger

	// now is a test seam for timestamping records.
	now func() time.Time
}

var _ DocumentService = (*Service)(nil)

// New constructs a Service around a fresh session. httpClient may be nil;
// timeout and transport policy belong to the caller.
func New(cfg Config, httpClient *http.Client, log logging.Logger) *Service {
	if cfg.MaxUploadSize <= 0 {
		cfg.MaxUploadSize = DefaultMaxUploadSize
	}
	if cfg.RootFolderName == "" {
		cfg.RootFolderName = "wecare"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	session := NewSession()
	return &Service{
		cfg:        cfg,
		session:    session,
		exec:       newExecutor(httpClient, session, log),
		httpClient: httpClient,
		log:        log.With("component", "drive"),
		now:        time.Now,
	}
}

func (s *Service) SetAccessToken(token string) {
	s.session.SetToken(token)
}

func (s *Service) ClearAccessToken() {
	s.session.Clear()
}

func (s *Service) GetFolderStatus() FolderStatus {
	return s.session.Status()
}
