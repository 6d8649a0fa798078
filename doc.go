// Package notesync is the Composition Root of a note store that keeps its
// notes in a GitHub repository.
//
// A directory of the repository (by default "notes/") is used as a flat
// key-value store of text notes. Reads and writes go through the REST
// contents API; every update or delete carries the blob SHA of the version
// it replaces, read right before the write. When another writer commits
// in between, the write fails with core.ErrConflict and nothing is
// overwritten.
//
// Usage:
//
//	cfg, _ := notesync.LoadConfig(".env")
//	svc, err := notesync.New(ctx, "", notesync.WithGitHub(cfg))
//
//	// Save a note
//	ctx = notesync.WithChangeReason(ctx, "docs(notes): add todo")
//	err = svc.SaveDocument(ctx, "todo", "- [ ] write tests")
//
//	// Read it back
//	doc, err := svc.GetDocument(ctx, "todo")
//
// Errors match the sentinels of package core (ErrConfiguration,
// ErrNotFound, ErrConflict, ErrTransport, ErrContentEmpty) with errors.Is.
package notesync
