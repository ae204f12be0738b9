// Package cli provides the interactive wecare command-line client.
//
// It wires configuration, the drive document service, and an interactive REPL
// that drives the core the way the mobile screens do. Typical flow: paste an
// OAuth access token at login, then upload, list, update, and delete
// documents stored in the provider's wecare folder tree.
//
// Key features:
//   - Login / Logout (token paste, no echo) and token refresh
//   - Upload local files with description, tags, and category
//   - List documents, show one, download content
//   - Update metadata, rename documents, delete them
//   - Save and show the singleton profile
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// An expired session is reported with an explicit re-login prompt.
package cli
