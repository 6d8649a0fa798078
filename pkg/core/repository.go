package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Adhering to this interface allows the core to be independent of the
// underlying storage backend.
type Repository interface {
	// Save persists a note. It creates if not exists, or updates if it does.
	Save(ctx context.Context, doc Document) error

	// Get retrieves a note by its ID.
	Get(ctx context.Context, id string) (Document, error)

	// List returns the entries of all available notes.
	List(ctx context.Context) ([]Entry, error)

	// Delete removes a note by its ID.
	Delete(ctx context.Context, id string) error

	// Initialize ensures the underlying storage is reachable and ready.
	Initialize(ctx context.Context) error
}

// Verifiable is implemented by repositories backed by a remote service
// that can be probed before any read or write.
type Verifiable interface {
	VerifyConnection(ctx context.Context) error
}
