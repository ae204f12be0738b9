package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// fallbackCategory marks records synthesized from provider-native attributes
// when a sidecar is missing or unreadable.
const fallbackCategory = "Uncategorized"

// ListFiles returns one FileRecord per non-trashed content file in the docs
// folder, in the provider's native enumeration order.
//
// The held token is validated explicitly first so an expired session surfaces
// as ErrSessionExpired rather than a generic remote error. Per file, the
// sidecar is read independently; a missing or unreadable sidecar downgrades
// to a record synthesized from the provider's own attributes and never aborts
// listing the rest.
func (s *Service) ListFiles(ctx context.Context) ([]FileRecord, error) {
	if err := s.ValidateToken(ctx); err != nil {
		return nil, err
	}

	folders, err := s.ensureReady(ctx)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("'%s' in parents and trashed=false", folders.Docs)
	fields := "files(id,name,mimeType,size,createdTime,modifiedTime,webViewLink)"
	listURL := fmt.Sprintf("%s/files?q=%s&fields=%s",
		s.cfg.APIBaseURL, url.QueryEscape(query), url.QueryEscape(fields))

	raw, err := s.exec.do(ctx, http.MethodGet, listURL, nil, "")
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	var list providerFileList
	if raw != nil {
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, fmt.Errorf("parse document list: %w", err)
		}
	}

	records := make([]FileRecord, 0, len(list.Files))
	for _, f := range list.Files {
		record, _, err := s.readSidecar(ctx, folders.Metadata, f.ID)
		if err != nil {
			s.log.Warn(ctx, "sidecar unreadable, using fallback record",
				"file_id", f.ID, "error", err)
			record = nil
		}
		if record == nil {
			record = fallbackRecord(f)
		}
		record.FileURL = fileURL(f)
		records = append(records, *record)
	}

	s.log.Debug(ctx, "listing complete", "files", len(records))
	return records, nil
}

// fallbackRecord synthesizes a FileRecord from the provider-native attributes
// of a content file whose sidecar could not be read.
func fallbackRecord(f providerFile) *FileRecord {
	size, _ := strconv.ParseInt(f.Size, 10, 64)
	return &FileRecord{
		ID:           f.ID,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         size,
		CreatedTime:  parseProviderTime(f.CreatedTime),
		ModifiedTime: parseProviderTime(f.ModifiedTime),
		Description:  "",
		Tags:         []string{},
		Category:     fallbackCategory,
	}
}

// fileURL prefers the provider's native view link and constructs the
// well-known fallback URL when the projection omitted it.
func fileURL(f providerFile) string {
	if f.WebViewLink != "" {
		return f.WebViewLink
	}
	return fmt.Sprintf("https://drive.google.com/file/d/%s/view", f.ID)
}

func parseProviderTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
