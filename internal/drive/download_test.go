package drive

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDownloadFile(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	payload := pdfPayload("report.pdf", 512)
	result := svc.UploadFile(ctx, payload, UploadOptions{})
	require.True(t, result.Success)

	content, mimeType, err := svc.DownloadFile(ctx, result.FileID)
	require.NoError(t, err)
	require.Equal(t, "application/pdf", mimeType)
	require.True(t, bytes.Equal(payload.Content, content))
}

func TestDownloadFile_NotFound(t *testing.T) {
	svc, _ := newTestService(t)
	// Folder structure must exist so the failure comes from the file lookup.
	require.NoError(t, svc.InitializeFolderStructure(context.Background()))

	_, _, err := svc.DownloadFile(context.Background(), "no-such-file")
	require.Error(t, err)

	var remoteErr *RemoteAPIError
	require.True(t, errors.As(err, &remoteErr))
	require.Equal(t, 404, remoteErr.StatusCode)
}
