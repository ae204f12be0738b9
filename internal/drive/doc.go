// Package drive implements the document-management core: a small synthetic
// document database emulated on top of a Drive-style general-purpose file
// storage API.
//
// The client owns a fixed folder tree on the provider:
//
//	wecare/
//	  docs/       content files, under their user-chosen display names
//	  metadata/   one sidecar JSON record per content file, <fileID>_metadata.json
//	  settings/   the singleton profile.json
//
// Durability, consistency, and conflict handling are entirely delegated to
// the provider. What this package adds is the convention layer: idempotent
// folder provisioning, upload paired with a sidecar metadata write, listing
// that reconciles content files with their sidecars (synthesizing a fallback
// record when a sidecar is missing or unreadable), metadata update with
// rename propagation, and deletion of the file+sidecar pair as a unit.
//
// Nothing here is transactional. A crash between the binary upload and the
// sidecar write, or inside the delete-then-recreate window of an update,
// leaves a content file without a sidecar; the listing fallback makes that
// state recoverable rather than invisible.
//
// Entry point is New, which returns a Service bound to a fresh Session; see
// DocumentService for the operation surface.
package drive
