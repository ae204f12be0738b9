package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// DownloadFile fetches a document's binary content along with its MIME type
// as recorded by the provider.
func (s *Service) DownloadFile(ctx context.Context, fileID string) ([]byte, string, error) {
	raw, err := s.exec.do(ctx, http.MethodGet,
		fmt.Sprintf("%s/files/%s?fields=%s", s.cfg.APIBaseURL, fileID, "id,name,mimeType"), nil, "")
	if err != nil {
		return nil, "", fmt.Errorf("fetch file attributes %s: %w", fileID, err)
	}

	var f providerFile
	if raw != nil {
		if err := json.Unmarshal(raw, &f); err != nil {
			return nil, "", fmt.Errorf("parse file attributes %s: %w", fileID, err)
		}
	}

	content, err := s.exec.doRaw(ctx, http.MethodGet,
		fmt.Sprintf("%s/files/%s?alt=media", s.cfg.APIBaseURL, fileID), nil, "")
	if err != nil {
		return nil, "", fmt.Errorf("download file %s: %w", fileID, err)
	}
	return content, f.MimeType, nil
}
