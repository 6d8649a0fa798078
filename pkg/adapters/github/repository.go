package github

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aretw0/notesync/pkg/core"
)

// Repository implements core.Repository on top of the contents API.
// Document IDs map to files under the notes root; the note extension is
// added when missing.
type Repository struct {
	client *Client
	config Config
	logger *slog.Logger
}

// NewRepository creates a new GitHub-backed repository.
func NewRepository(config Config, logger *slog.Logger) *Repository {
	client := NewClient(config, logger)
	return &Repository{
		client: client,
		config: client.Config(),
		logger: client.logger,
	}
}

// Client exposes the underlying contents client.
func (r *Repository) Client() *Client {
	return r.client
}

// Initialize probes the remote unless SkipVerify is set.
func (r *Repository) Initialize(ctx context.Context) error {
	if r.config.SkipVerify {
		return nil
	}
	if err := r.client.VerifyConnection(ctx); err != nil {
		return fmt.Errorf("failed to initialize github repository: %w", err)
	}
	return nil
}

// VerifyConnection implements core.Verifiable.
func (r *Repository) VerifyConnection(ctx context.Context) error {
	return r.client.VerifyConnection(ctx)
}

// Save writes the document. The commit message is taken from
// core.ChangeReasonKey in ctx when present.
func (r *Repository) Save(ctx context.Context, doc core.Document) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	identifier := r.config.documentPath(doc.ID)
	msg := core.ChangeReason(ctx, fmt.Sprintf("docs(notes): update %s", doc.ID))

	res, err := r.client.PutContent(ctx, identifier, doc.Content, msg)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", doc.ID, err)
	}
	r.logger.Info("note saved", "id", doc.ID, "commit", res.Commit.SHA)
	return nil
}

// Get reads a document by ID.
func (r *Repository) Get(ctx context.Context, id string) (core.Document, error) {
	text, err := r.client.GetContent(ctx, r.config.documentPath(id))
	if err != nil {
		return core.Document{}, fmt.Errorf("failed to read %s: %w", id, err)
	}
	return core.Document{ID: id, Content: text}, nil
}

// List returns the entries under the notes root.
func (r *Repository) List(ctx context.Context) ([]core.Entry, error) {
	entries, err := r.client.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return entries, nil
}

// Delete removes a document by ID.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	msg := core.ChangeReason(ctx, fmt.Sprintf("docs(notes): delete %s", id))
	res, err := r.client.DeleteEntry(ctx, r.config.documentPath(id), msg)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", id, err)
	}
	r.logger.Info("note deleted", "id", id, "commit", res.Commit.SHA)
	return nil
}

var _ core.Repository = (*Repository)(nil)
var _ core.Verifiable = (*Repository)(nil)
