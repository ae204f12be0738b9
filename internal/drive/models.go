package drive

import (
	"path/filepath"
	"strings"
	"time"
)

// FileRecord is the sidecar metadata kept for every uploaded document, one
// JSON object per content file. The record is addressed purely by
// deterministic naming (<fileID>_metadata.json in the metadata folder); the
// provider knows nothing about the pairing.
type FileRecord struct {
	// ID equals the content file's provider-assigned identifier and is
	// immutable once created. The sidecar is never the unit of identity.
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	MimeType     string    `json:"mimeType"`
	Size         int64     `json:"size"`
	CreatedTime  time.Time `json:"createdTime"`
	ModifiedTime time.Time `json:"modifiedTime"`
	Description  string    `json:"description,omitempty"`
	Tags         []string  `json:"tags"`
	Category     string    `json:"category,omitempty"`

	// FileURL is derived at listing time from the provider's view link and is
	// never persisted in the sidecar.
	FileURL string `json:"-"`
}

// docTypes maps MIME types to the short labels shown in document lists.
var docTypes = map[string]string{
	"application/pdf":    "PDF",
	"application/msword": "DOC",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document":   "DOC",
	"application/vnd.ms-excel": "XLS",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":         "XLS",
	"application/vnd.ms-powerpoint":                                             "PPT",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "PPT",
	"text/plain": "TXT",
	"text/csv":   "CSV",
	"image/jpeg": "IMAGE",
	"image/png":  "IMAGE",
	"image/gif":  "IMAGE",
	"image/webp": "IMAGE",
}

// DocType returns a short display label for the record's content type,
// e.g. "PDF" for application/pdf. Unknown types fall back to the uppercased
// file extension, or "FILE" when there is none.
func (r *FileRecord) DocType() string {
	if t, ok := docTypes[r.MimeType]; ok {
		return t
	}
	if ext := strings.TrimPrefix(filepath.Ext(r.Name), "."); ext != "" {
		return strings.ToUpper(ext)
	}
	return "FILE"
}

// FilePayload is the binary input to an upload.
type FilePayload struct {
	Name     string
	MimeType string
	Size     int64
	Content  []byte
}

// UploadOptions carries the optional metadata fields of an upload.
type UploadOptions struct {
	// DisplayName overrides the payload's file name when non-empty.
	DisplayName string
	Description string
	Tags        []string
	Category    string
}

// UploadResult is the structured outcome of UploadFile. Upload failures are
// frequent enough to be modeled as data rather than errors, so UploadFile
// never returns a Go error past its boundary.
type UploadResult struct {
	Success bool   `json:"success"`
	FileID  string `json:"fileId,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MetadataUpdate names the fields of a sidecar record that may be changed
// after upload. Nil pointers (and a nil Tags slice) leave the existing value
// untouched.
type MetadataUpdate struct {
	Name        *string
	Description *string
	Tags        []string
	Category    *string
}

// Profile is the singleton settings object stored as settings/profile.json,
// written with the same sidecar machinery as per-file metadata.
type Profile struct {
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	BloodType        string    `json:"bloodType,omitempty"`
	Allergies        []string  `json:"allergies,omitempty"`
	EmergencyContact string    `json:"emergencyContact,omitempty"`
	UpdatedTime      time.Time `json:"updatedTime"`
}

// FolderStatus is a diagnostic snapshot of the session: whether a token is
// held and which folder identifiers are currently cached.
type FolderStatus struct {
	TokenHeld   bool
	Provisioned bool
	RootID      string
	DocsID      string
	MetadataID  string
	SettingsID  string
}

// providerFile mirrors the provider's native file resource, limited to the
// fields the client projects. Size arrives as a decimal string.
type providerFile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	Size         string `json:"size,omitempty"`
	CreatedTime  string `json:"createdTime,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
	WebViewLink  string `json:"webViewLink,omitempty"`
}

// providerFileList is the provider's response envelope for file searches.
type providerFileList struct {
	Files []providerFile `json:"files"`
}
