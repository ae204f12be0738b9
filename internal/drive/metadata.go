package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// sidecarName derives the deterministic sidecar object name for a content
// file. The name is the only link between the two objects.
func sidecarName(fileID string) string {
	return fileID + "_metadata.json"
}

// findSidecar searches the metadata folder for the sidecar of fileID and
// returns the sidecar's own object identifier, or "" when absent.
func (s *Service) findSidecar(ctx context.Context, metadataFolderID, fileID string) (string, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false",
		sidecarName(fileID), metadataFolderID)
	searchURL := fmt.Sprintf("%s/files?q=%s&fields=%s",
		s.cfg.APIBaseURL, url.QueryEscape(query), url.QueryEscape("files(id,name)"))

	raw, err := s.exec.do(ctx, http.MethodGet, searchURL, nil, "")
	if err != nil {
		return "", fmt.Errorf("search sidecar for %s: %w", fileID, err)
	}

	var list providerFileList
	if raw != nil {
		if err := json.Unmarshal(raw, &list); err != nil {
			return "", fmt.Errorf("parse sidecar search for %s: %w", fileID, err)
		}
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].ID, nil
}

// readSidecar loads and parses the sidecar record for fileID. A missing
// sidecar returns a nil record with sidecarID "" and no error; absence is
// data, not a failure.
func (s *Service) readSidecar(ctx context.Context, metadataFolderID, fileID string) (*FileRecord, string, error) {
	sidecarID, err := s.findSidecar(ctx, metadataFolderID, fileID)
	if err != nil {
		return nil, "", err
	}
	if sidecarID == "" {
		return nil, "", nil
	}

	content, err := s.exec.doRaw(ctx, http.MethodGet,
		fmt.Sprintf("%s/files/%s?alt=media", s.cfg.APIBaseURL, sidecarID), nil, "")
	if err != nil {
		return nil, sidecarID, fmt.Errorf("fetch sidecar for %s: %w", fileID, err)
	}

	var record FileRecord
	if err := json.Unmarshal(content, &record); err != nil {
		return nil, sidecarID, fmt.Errorf("parse sidecar for %s: %w", fileID, err)
	}
	return &record, sidecarID, nil
}

// writeSidecar serializes a record and uploads it under its deterministic
// name into the metadata folder.
func (s *Service) writeSidecar(ctx context.Context, fileID string, record *FileRecord) error {
	folders, err := s.ensureReady(ctx)
	if err != nil {
		return err
	}

	encoded, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode sidecar for %s: %w", fileID, err)
	}

	if _, err := s.uploadObject(ctx, folders.Metadata, sidecarName(fileID),
		"application/json", encoded); err != nil {
		return fmt.Errorf("write sidecar for %s: %w", fileID, err)
	}
	return nil
}

// GetFileMetadata reads the sidecar record for fileID. The boolean reports
// whether one exists; absence is not an error.
func (s *Service) GetFileMetadata(ctx context.Context, fileID string) (*FileRecord, bool, error) {
	folders, err := s.ensureReady(ctx)
	if err != nil {
		return nil, false, err
	}

	record, _, err := s.readSidecar(ctx, folders.Metadata, fileID)
	if err != nil {
		return nil, false, err
	}
	if record == nil {
		return nil, false, nil
	}
	return record, true, nil
}

// UpdateMetadata merges the partial fields over the existing sidecar record,
// refreshes the modified time, and replaces the sidecar object.
//
// An update presupposes a prior write: a missing sidecar fails with
// ErrMetadataNotFound. A name change is additionally propagated to the
// underlying content file; that rename is best-effort and its failure never
// aborts the metadata update.
//
// The replacement is delete-then-recreate rather than an in-place patch; the
// provider's content-replacement semantics for arbitrary bodies proved less
// reliable than recreate. A concurrent reader can observe no sidecar inside
// that window and falls back to a synthesized record.
func (s *Service) UpdateMetadata(ctx context.Context, fileID string, upd MetadataUpdate) (*FileRecord, error) {
	folders, err := s.ensureReady(ctx)
	if err != nil {
		return nil, err
	}

	record, sidecarID, err := s.readSidecar(ctx, folders.Metadata, fileID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("%w: file %s", ErrMetadataNotFound, fileID)
	}

	previousName := record.Name
	if upd.Name != nil {
		record.Name = *upd.Name
	}
	if upd.Description != nil {
		record.Description = *upd.Description
	}
	if upd.Tags != nil {
		record.Tags = upd.Tags
	}
	if upd.Category != nil {
		record.Category = *upd.Category
	}
	record.ModifiedTime = s.now().UTC()

	if record.Name != previousName {
		if err := s.renameContentFile(ctx, fileID, record.Name); err != nil {
			s.log.Warn(ctx, "content file rename failed", "file_id", fileID, "error", err)
		}
	}

	if _, err := s.exec.do(ctx, http.MethodDelete,
		fmt.Sprintf("%s/files/%s", s.cfg.APIBaseURL, sidecarID), nil, ""); err != nil {
		return nil, fmt.Errorf("replace sidecar for %s: %w", fileID, err)
	}
	if err := s.writeSidecar(ctx, fileID, record); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "metadata updated", "file_id", fileID)
	return record, nil
}

// UpdateFileName renames a document: metadata name field plus the content
// file itself, through the regular update path.
func (s *Service) UpdateFileName(ctx context.Context, fileID, newName string) (*FileRecord, error) {
	return s.UpdateMetadata(ctx, fileID, MetadataUpdate{Name: &newName})
}

// renameContentFile patches the provider-native name of the content file so
// it matches the display name in the sidecar.
func (s *Service) renameContentFile(ctx context.Context, fileID, newName string) error {
	encoded, err := json.Marshal(map[string]string{"name": newName})
	if err != nil {
		return err
	}
	_, err = s.exec.do(ctx, http.MethodPatch,
		fmt.Sprintf("%s/files/%s", s.cfg.APIBaseURL, fileID),
		bytes.NewReader(encoded), "application/json")
	return err
}
