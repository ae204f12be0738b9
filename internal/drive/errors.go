package drive

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthenticated means no access token is held at all.
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrSessionExpired means a token is held but the provider rejected it
	// during validation. Callers should prompt for re-login rather than retry.
	ErrSessionExpired = errors.New("session expired, please log in again")

	// ErrFolderInitializationFailed means one of the four bootstrap folders
	// could not be resolved or created.
	ErrFolderInitializationFailed = errors.New("folder initialization failed")

	// ErrFileTooLarge is returned before any network call when a payload
	// exceeds the configured size ceiling.
	ErrFileTooLarge = errors.New("file size exceeds limit")

	// ErrMetadataNotFound means an update was attempted for a file that has
	// no existing sidecar record.
	ErrMetadataNotFound = errors.New("metadata not found")

	// ErrUploadResponseMalformed means the provider accepted an upload but
	// returned no usable file identifier.
	ErrUploadResponseMalformed = errors.New("upload response missing file id")
)

// RemoteAPIError is a non-success HTTP status from the storage provider.
type RemoteAPIError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAPIError) Error() string {
	return fmt.Sprintf("operation failed: provider returned status %d: %s", e.StatusCode, e.Body)
}
