package drive

import (
	"context"
	"fmt"
	"net/http"
)

// DeleteFile removes a content file and its sidecar as a logical unit.
//
// The content file goes first: if that call fails, the whole operation fails
// and the sidecar is left untouched. Once the content file is confirmed gone,
// sidecar cleanup is best-effort: its absence means the pair was already
// consistent, and a cleanup failure is logged but never turns a
// user-perceived successful delete into an error (the sidecar remains as a
// searchable orphan).
func (s *Service) DeleteFile(ctx context.Context, fileID string) error {
	folders, err := s.ensureReady(ctx)
	if err != nil {
		return err
	}

	if _, err := s.exec.do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/files/%s", s.cfg.APIBaseURL, fileID), nil, ""); err != nil {
		return fmt.Errorf("delete file %s: %w", fileID, err)
	}

	sidecarID, err := s.findSidecar(ctx, folders.Metadata, fileID)
	if err != nil {
		s.log.Warn(ctx, "sidecar lookup after delete failed", "file_id", fileID, "error", err)
		return nil
	}
	if sidecarID == "" {
		s.log.Debug(ctx, "no sidecar to delete", "file_id", fileID)
		return nil
	}

	if _, err := s.exec.do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/files/%s", s.cfg.APIBaseURL, sidecarID), nil, ""); err != nil {
		s.log.Warn(ctx, "sidecar delete failed, orphan left behind",
			"file_id", fileID, "sidecar_id", sidecarID, "error", err)
		return nil
	}

	s.log.Info(ctx, "file deleted", "file_id", fileID)
	return nil
}
