package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// profileObjectName is the singleton profile object inside the settings
// folder.
const profileObjectName = "profile.json"

// findProfile returns the object identifier of the singleton profile, or ""
// when none has been saved yet.
func (s *Service) findProfile(ctx context.Context, settingsFolderID string) (string, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false",
		profileObjectName, settingsFolderID)
	searchURL := fmt.Sprintf("%s/files?q=%s&fields=%s",
		s.cfg.APIBaseURL, url.QueryEscape(query), url.QueryEscape("files(id,name)"))

	raw, err := s.exec.do(ctx, http.MethodGet, searchURL, nil, "")
	if err != nil {
		return "", fmt.Errorf("search profile: %w", err)
	}

	var list providerFileList
	if raw != nil {
		if err := json.Unmarshal(raw, &list); err != nil {
			return "", fmt.Errorf("parse profile search: %w", err)
		}
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].ID, nil
}

// SaveProfile writes the settings/profile.json object, replacing any previous
// version with the same delete-then-recreate pattern used for file sidecars.
func (s *Service) SaveProfile(ctx context.Context, p Profile) error {
	folders, err := s.ensureReady(ctx)
	if err != nil {
		return err
	}

	existingID, err := s.findProfile(ctx, folders.Settings)
	if err != nil {
		return err
	}
	if existingID != "" {
		if _, err := s.exec.do(ctx, http.MethodDelete,
			fmt.Sprintf("%s/files/%s", s.cfg.APIBaseURL, existingID), nil, ""); err != nil {
			return fmt.Errorf("replace profile: %w", err)
		}
	}

	p.UpdatedTime = s.now().UTC()
	encoded, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if _, err := s.uploadObject(ctx, folders.Settings, profileObjectName,
		"application/json", encoded); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	s.log.Info(ctx, "profile saved")
	return nil
}

// GetProfile reads the singleton profile. The boolean reports whether one has
// been saved; absence is not an error.
func (s *Service) GetProfile(ctx context.Context) (*Profile, bool, error) {
	folders, err := s.ensureReady(ctx)
	if err != nil {
		return nil, false, err
	}

	objectID, err := s.findProfile(ctx, folders.Settings)
	if err != nil {
		return nil, false, err
	}
	if objectID == "" {
		return nil, false, nil
	}

	content, err := s.exec.doRaw(ctx, http.MethodGet,
		fmt.Sprintf("%s/files/%s?alt=media", s.cfg.APIBaseURL, objectID), nil, "")
	if err != nil {
		return nil, false, fmt.Errorf("fetch profile: %w", err)
	}

	var p Profile
	if err := json.Unmarshal(content, &p); err != nil {
		return nil, false, fmt.Errorf("parse profile: %w", err)
	}
	return &p, true, nil
}
