package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// uploadObject performs a multipart upload of raw content into the given
// parent folder and returns the provider-assigned identifier. The body
// carries a JSON metadata part followed by the content part, per the
// provider's uploadType=multipart contract.
func (s *Service) uploadObject(ctx context.Context, parentID, name, mimeType string, content []byte) (string, error) {
	meta := map[string]any{"name": name}
	if parentID != "" {
		meta["parents"] = []string{parentID}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := mw.CreatePart(metaHeader)
	if err != nil {
		return "", fmt.Errorf("create metadata part: %w", err)
	}
	if err := json.NewEncoder(metaPart).Encode(meta); err != nil {
		return "", fmt.Errorf("encode metadata part: %w", err)
	}

	contentHeader := textproto.MIMEHeader{}
	contentHeader.Set("Content-Type", mimeType)
	contentPart, err := mw.CreatePart(contentHeader)
	if err != nil {
		return "", fmt.Errorf("create content part: %w", err)
	}
	if _, err := contentPart.Write(content); err != nil {
		return "", fmt.Errorf("write content part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finish multipart body: %w", err)
	}

	uploadURL := s.cfg.UploadBaseURL + "/files?uploadType=multipart"
	contentType := "multipart/related; boundary=" + mw.Boundary()

	raw, err := s.exec.do(ctx, http.MethodPost, uploadURL, &buf, contentType)
	if err != nil {
		return "", err
	}

	var created providerFile
	if raw != nil {
		if err := json.Unmarshal(raw, &created); err != nil {
			return "", fmt.Errorf("%w: %w", ErrUploadResponseMalformed, err)
		}
	}
	if created.ID == "" {
		return "", ErrUploadResponseMalformed
	}
	return created.ID, nil
}

// UploadFile uploads a payload into the docs folder under its display name,
// then writes the sidecar metadata record keyed to the new file identifier.
//
// The size ceiling is enforced before any network call. When the binary
// upload succeeds but the sidecar write fails, the content file is left in
// place without a sidecar; listing recovers it through the fallback path, so
// the upload is still reported as successful. All failures come back inside
// the result; UploadFile never returns an error to the caller.
func (s *Service) UploadFile(ctx context.Context, payload FilePayload, opts UploadOptions) UploadResult {
	if payload.Size > s.cfg.MaxUploadSize {
		return UploadResult{
			Error: fmt.Sprintf("File size exceeds limit of %d MiB", s.cfg.MaxUploadSize>>20),
		}
	}

	folders, err := s.ensureReady(ctx)
	if err != nil {
		return UploadResult{Error: err.Error()}
	}

	name := payload.Name
	if opts.DisplayName != "" {
		name = opts.DisplayName
	}

	fileID, err := s.uploadObject(ctx, folders.Docs, name, payload.MimeType, payload.Content)
	if err != nil {
		s.log.Error(ctx, "binary upload failed", "name", name, "error", err)
		return UploadResult{Error: err.Error()}
	}

	now := s.now().UTC()
	record := &FileRecord{
		ID:           fileID,
		Name:         name,
		MimeType:     payload.MimeType,
		Size:         payload.Size,
		CreatedTime:  now,
		ModifiedTime: now,
		Description:  opts.Description,
		Tags:         opts.Tags,
		Category:     opts.Category,
	}
	if record.Tags == nil {
		record.Tags = []string{}
	}

	if err := s.writeSidecar(ctx, fileID, record); err != nil {
		// Accepted partial-failure state: the content file exists without a
		// sidecar and listing will synthesize a fallback record for it.
		s.log.Warn(ctx, "sidecar write failed after upload", "file_id", fileID, "error", err)
	}

	s.log.Info(ctx, "file uploaded", "file_id", fileID, "name", name, "size", payload.Size)
	return UploadResult{Success: true, FileID: fileID}
}
