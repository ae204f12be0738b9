package drive

import "sync"

// folderIDs holds the four provisioned folder identifiers.
type folderIDs struct {
	Root     string
	Docs     string
	Metadata string
	Settings string
}

// Session holds the per-login mutable state: the current access token and the
// cached folder identifiers. Lifecycle is create-on-login / clear-on-logout;
// clearing the token also drops the folder cache, so the next authenticated
// call re-provisions.
//
// A Session never performs I/O and none of its operations can fail.
type Session struct {
	mu          sync.Mutex
	token       string
	folders     folderIDs
	provisioned bool
}

func NewSession() *Session {
	return &Session{}
}

// SetToken stores the access token used for all subsequent provider calls.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

// Token returns the held access token, or "" when none is set.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Clear discards the token and invalidates the cached folder identifiers.
// Acts as the session boundary.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.folders = folderIDs{}
	s.provisioned = false
}

// SetFolders caches the provisioned folder identifiers for the session.
func (s *Session) SetFolders(f folderIDs) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.folders = f
	s.provisioned = true
}

// Folders returns the cached folder identifiers and whether provisioning has
// completed this session.
func (s *Session) Folders() (folderIDs, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.folders, s.provisioned
}

// Status reports a diagnostic snapshot of the session state.
func (s *Session) Status() FolderStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return FolderStatus{
		TokenHeld:   s.token != "",
		Provisioned: s.provisioned,
		RootID:      s.folders.Root,
		DocsID:      s.folders.Docs,
		MetadataID:  s.folders.Metadata,
		SettingsID:  s.folders.Settings,
	}
}
