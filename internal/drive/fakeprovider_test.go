package drive

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/wecareapp/driveclient/internal/logging"
)

// fakeObject is one stored file or folder on the fake provider.
type fakeObject struct {
	ID       string
	Name     string
	MimeType string
	Parents  []string
	Content  []byte
	Trashed  bool
	Created  time.Time
	Modified time.Time
}

// fakeProvider is an in-memory stand-in for the Drive-style storage API. It
// implements just enough of the contract the core depends on: file search
// with q filters, folder create, multipart upload, attribute get, alt=media
// content get, patch rename, delete, account-info, and the OAuth token
// endpoint.
type fakeProvider struct {
	t *testing.T

	mu       sync.Mutex
	objects  map[string]*fakeObject
	requests int

	validTokens map[string]bool

	// failure injection
	failDelete      map[string]bool // object ids whose DELETE returns 500
	failPatch       map[string]bool // object ids whose PATCH returns 500
	malformedUpload bool            // multipart upload answers without an id
	failUploads     bool            // multipart upload answers 500
	uploads         int             // multipart uploads seen so far
	failUploadsFrom int             // when > 0, uploads numbered >= this fail
}

func newFakeProvider(t *testing.T) *fakeProvider {
	t.Helper()
	return &fakeProvider{
		t:           t,
		objects:     make(map[string]*fakeObject),
		validTokens: map[string]bool{"test-token": true},
		failDelete:  make(map[string]bool),
		failPatch:   make(map[string]bool),
	}
}

func (p *fakeProvider) server() *httptest.Server {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /drive/files", p.requireAuth(p.handleSearch))
	mux.HandleFunc("POST /drive/files", p.requireAuth(p.handleCreate))
	mux.HandleFunc("GET /drive/files/{id}", p.requireAuth(p.handleGet))
	mux.HandleFunc("PATCH /drive/files/{id}", p.requireAuth(p.handlePatch))
	mux.HandleFunc("DELETE /drive/files/{id}", p.requireAuth(p.handleDelete))
	mux.HandleFunc("POST /upload/files", p.requireAuth(p.handleUpload))
	mux.HandleFunc("GET /userinfo", p.requireAuth(p.handleUserInfo))
	mux.HandleFunc("POST /token", p.handleToken)

	srv := httptest.NewServer(mux)
	p.t.Cleanup(srv.Close)
	return srv
}

func (p *fakeProvider) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p.mu.Lock()
		p.requests++
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		ok := p.validTokens[token]
		p.mu.Unlock()

		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"invalid_token"}`)
			return
		}
		next(w, r)
	}
}

// handleSearch implements GET /files?q=... for the filter styles the client
// emits: name='X', mimeType='X', 'Y' in parents, trashed=false.
func (p *fakeProvider) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	var wantName, wantMime, wantParent string
	for _, cond := range strings.Split(query, " and ") {
		cond = strings.TrimSpace(cond)
		switch {
		case strings.HasPrefix(cond, "name='"):
			wantName = strings.TrimSuffix(strings.TrimPrefix(cond, "name='"), "'")
		case strings.HasPrefix(cond, "mimeType='"):
			wantMime = strings.TrimSuffix(strings.TrimPrefix(cond, "mimeType='"), "'")
		case strings.HasSuffix(cond, "in parents"):
			wantParent = strings.Trim(strings.TrimSpace(strings.TrimSuffix(cond, "in parents")), "'")
		case cond == "trashed=false":
			// always applied below
		default:
			p.t.Errorf("fake provider: unsupported query condition %q", cond)
		}
	}

	p.mu.Lock()
	var files []map[string]any
	for _, o := range p.objects {
		if o.Trashed {
			continue
		}
		if wantName != "" && o.Name != wantName {
			continue
		}
		if wantMime != "" && o.MimeType != wantMime {
			continue
		}
		if wantParent != "" && !contains(o.Parents, wantParent) {
			continue
		}
		files = append(files, p.fileJSON(o))
	}
	p.mu.Unlock()

	writeJSON(w, map[string]any{"files": files})
}

func (p *fakeProvider) handleCreate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name     string   `json:"name"`
		MimeType string   `json:"mimeType"`
		Parents  []string `json:"parents"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	o := p.addObject(body.Name, body.MimeType, body.Parents, nil)
	writeJSON(w, p.fileJSON(o))
}

func (p *fakeProvider) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("uploadType") != "multipart" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	p.uploads++
	fail, malformed := p.failUploads, p.malformedUpload
	if p.failUploadsFrom > 0 && p.uploads >= p.failUploadsFrom {
		fail = true
	}
	p.mu.Unlock()
	if fail {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"backend unavailable"}`)
		return
	}

	_, params, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	mr := multipart.NewReader(r.Body, params["boundary"])

	metaPart, err := mr.NextPart()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	var meta struct {
		Name    string   `json:"name"`
		Parents []string `json:"parents"`
	}
	if err := json.NewDecoder(metaPart).Decode(&meta); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	contentPart, err := mr.NextPart()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	contentType := contentPart.Header.Get("Content-Type")
	content, err := io.ReadAll(contentPart)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if malformed {
		writeJSON(w, map[string]any{"kind": "drive#file"})
		return
	}

	o := p.addObject(meta.Name, contentType, meta.Parents, content)
	writeJSON(w, p.fileJSON(o))
}

func (p *fakeProvider) handleGet(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p.mu.Lock()
	o, ok := p.objects[id]
	p.mu.Unlock()
	if !ok || o.Trashed {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	if r.URL.Query().Get("alt") == "media" {
		w.Header().Set("Content-Type", o.MimeType)
		_, _ = w.Write(o.Content)
		return
	}
	writeJSON(w, p.fileJSON(o))
}

func (p *fakeProvider) handlePatch(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p.mu.Lock()
	failPatch := p.failPatch[id]
	p.mu.Unlock()
	if failPatch {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"backend unavailable"}`)
		return
	}

	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	p.mu.Lock()
	o, ok := p.objects[id]
	if ok {
		if name, has := body["name"]; has {
			o.Name = name
			o.Modified = time.Now().UTC()
		}
	}
	p.mu.Unlock()
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	writeJSON(w, p.fileJSON(o))
}

func (p *fakeProvider) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	p.mu.Lock()
	if p.failDelete[id] {
		p.mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":"backend unavailable"}`)
		return
	}
	_, ok := p.objects[id]
	delete(p.objects, id)
	p.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (p *fakeProvider) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{"email": "user@example.com"})
}

func (p *fakeProvider) handleToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if r.PostFormValue("grant_type") != "refresh_token" ||
		r.PostFormValue("refresh_token") != "valid-refresh" {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":"invalid_grant"}`)
		return
	}

	p.mu.Lock()
	p.validTokens["refreshed-token"] = true
	p.mu.Unlock()

	writeJSON(w, map[string]any{
		"access_token": "refreshed-token",
		"expires_in":   3600,
		"token_type":   "Bearer",
	})
}

// addObject stores a new object and returns it.
func (p *fakeProvider) addObject(name, mimeType string, parents []string, content []byte) *fakeObject {
	now := time.Now().UTC()
	o := &fakeObject{
		ID:       uuid.NewString(),
		Name:     name,
		MimeType: mimeType,
		Parents:  parents,
		Content:  content,
		Created:  now,
		Modified: now,
	}
	p.mu.Lock()
	p.objects[o.ID] = o
	p.mu.Unlock()
	return o
}

func (p *fakeProvider) fileJSON(o *fakeObject) map[string]any {
	return map[string]any{
		"id":           o.ID,
		"name":         o.Name,
		"mimeType":     o.MimeType,
		"size":         fmt.Sprintf("%d", len(o.Content)),
		"createdTime":  o.Created.Format(time.RFC3339),
		"modifiedTime": o.Modified.Format(time.RFC3339),
		"webViewLink":  "https://fake.example.com/view/" + o.ID,
	}
}

// objectsByName returns all non-trashed objects with the given name.
func (p *fakeProvider) objectsByName(name string) []*fakeObject {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*fakeObject
	for _, o := range p.objects {
		if !o.Trashed && o.Name == name {
			out = append(out, o)
		}
	}
	return out
}

// removeByName hard-deletes objects out of band, bypassing the API.
func (p *fakeProvider) removeByName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for id, o := range p.objects {
		if o.Name == name {
			delete(p.objects, id)
		}
	}
}

// corruptByName replaces an object's content with bytes that are not JSON.
func (p *fakeProvider) corruptByName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, o := range p.objects {
		if o.Name == name {
			o.Content = []byte("{not json")
		}
	}
}

func (p *fakeProvider) requestCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests
}

func contains(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	_ = json.NewEncoder(w).Encode(v)
}

// testLogger returns a Logger that swallows output.
func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestService builds a Service wired to a fresh fake provider, already
// authenticated with the fake's valid token.
func newTestService(t *testing.T) (*Service, *fakeProvider) {
	t.Helper()
	p := newFakeProvider(t)
	srv := p.server()

	svc := New(Config{
		APIBaseURL:     srv.URL + "/drive",
		UploadBaseURL:  srv.URL + "/upload",
		TokenURL:       srv.URL + "/token",
		AccountInfoURL: srv.URL + "/userinfo",
		RootFolderName: "wecare",
		ClientID:       "client-id",
		ClientSecret:   "client-secret",
	}, srv.Client(), testLogger())
	svc.SetAccessToken("test-token")
	return svc, p
}
