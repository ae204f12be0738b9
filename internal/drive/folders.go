package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// ensureFolder resolves a non-trashed folder with the exact name under
// parentID (or under the implicit root when parentID is empty), creating it
// when absent. Safe to call repeatedly: the search runs immediately before
// creation. Two sessions provisioning concurrently can still each create a
// folder; that narrow race is a known limitation, not silently resolved.
func (s *Service) ensureFolder(ctx context.Context, name, parentID string) (string, error) {
	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false", name, folderMimeType)
	if parentID != "" {
		query = fmt.Sprintf("name='%s' and mimeType='%s' and '%s' in parents and trashed=false",
			name, folderMimeType, parentID)
	}

	searchURL := fmt.Sprintf("%s/files?q=%s&fields=%s",
		s.cfg.APIBaseURL, url.QueryEscape(query), url.QueryEscape("files(id,name)"))

	raw, err := s.exec.do(ctx, http.MethodGet, searchURL, nil, "")
	if err != nil {
		return "", fmt.Errorf("search folder %q: %w", name, err)
	}

	var list providerFileList
	if raw != nil {
		if err := json.Unmarshal(raw, &list); err != nil {
			return "", fmt.Errorf("parse folder search for %q: %w", name, err)
		}
	}
	if len(list.Files) > 0 {
		return list.Files[0].ID, nil
	}

	body := map[string]any{"name": name, "mimeType": folderMimeType}
	if parentID != "" {
		body["parents"] = []string{parentID}
	}
	encoded, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("encode folder create for %q: %w", name, err)
	}

	raw, err = s.exec.do(ctx, http.MethodPost, s.cfg.APIBaseURL+"/files",
		bytes.NewReader(encoded), "application/json")
	if err != nil {
		return "", fmt.Errorf("create folder %q: %w", name, err)
	}

	var created providerFile
	if raw != nil {
		if err := json.Unmarshal(raw, &created); err != nil {
			return "", fmt.Errorf("parse folder create for %q: %w", name, err)
		}
	}
	if created.ID == "" {
		return "", fmt.Errorf("create folder %q: provider returned no id", name)
	}

	s.log.Info(ctx, "folder created", "name", name, "id", created.ID)
	return created.ID, nil
}

// InitializeFolderStructure resolves or creates the four-folder hierarchy
// (root, then docs/metadata/settings under it) and caches the identifiers for
// the session. Idempotent: a provisioned session returns immediately, and
// re-running the bootstrap never duplicates folders. Any single failure
// aborts the whole sequence with ErrFolderInitializationFailed.
func (s *Service) InitializeFolderStructure(ctx context.Context) error {
	if _, ok := s.session.Folders(); ok {
		return nil
	}

	rootID, err := s.ensureFolder(ctx, s.cfg.RootFolderName, "")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFolderInitializationFailed, err)
	}

	var ids folderIDs
	ids.Root = rootID
	for _, child := range []struct {
		name string
		dst  *string
	}{
		{docsFolderName, &ids.Docs},
		{metadataFolderName, &ids.Metadata},
		{settingsFolderName, &ids.Settings},
	} {
		id, err := s.ensureFolder(ctx, child.name, rootID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFolderInitializationFailed, err)
		}
		*child.dst = id
	}

	s.session.SetFolders(ids)
	s.log.Info(ctx, "folder structure ready",
		"root", ids.Root, "docs", ids.Docs, "metadata", ids.Metadata, "settings", ids.Settings)
	return nil
}

// ensureReady returns the cached folder identifiers, provisioning first when
// needed.
func (s *Service) ensureReady(ctx context.Context) (folderIDs, error) {
	if ids, ok := s.session.Folders(); ok {
		return ids, nil
	}
	if err := s.InitializeFolderStructure(ctx); err != nil {
		return folderIDs{}, err
	}
	ids, _ := s.session.Folders()
	return ids, nil
}
