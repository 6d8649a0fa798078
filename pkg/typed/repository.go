package typed

import (
	"context"
	"fmt"

	"github.com/aretw0/notesync/pkg/core"
	"github.com/goccy/go-json"
)

// DocumentModel is a typed view of a note whose content is a JSON value.
type DocumentModel[T any] struct {
	ID    string
	Data  T
	Saver Saver[T] // Active Record reference interface
}

// Saver interface avoids circular dependencies or tight coupling with Repository/Service structs.
type Saver[T any] interface {
	Save(ctx context.Context, doc *DocumentModel[T]) error
}

// Save persists the document using the attached saver (Repository or Service).
func (d *DocumentModel[T]) Save(ctx context.Context) error {
	if d.Saver == nil {
		return fmt.Errorf("document is detached (missing Saver)")
	}
	return d.Saver.Save(ctx, d)
}

// Repository wraps a core.Repository to provide type-safe access.
type Repository[T any] struct {
	repo core.Repository
}

// NewRepository creates a new type-safe wrapper around an existing repository.
func NewRepository[T any](repo core.Repository) *Repository[T] {
	return &Repository[T]{repo: repo}
}

// Save persists a typed document.
func (r *Repository[T]) Save(ctx context.Context, doc *DocumentModel[T]) error {
	content, err := encode(doc.Data)
	if err != nil {
		return err
	}

	if doc.Saver == nil {
		doc.Saver = r
	}
	return r.repo.Save(ctx, core.Document{ID: doc.ID, Content: content})
}

// Get retrieves a document and unmarshals it.
func (r *Repository[T]) Get(ctx context.Context, id string) (*DocumentModel[T], error) {
	coreDoc, err := r.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromCore(coreDoc, r)
}

// List reads every listed note, one after the other.
func (r *Repository[T]) List(ctx context.Context) ([]*DocumentModel[T], error) {
	entries, err := r.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*DocumentModel[T], 0, len(entries))
	for _, e := range entries {
		model, err := r.Get(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to process document %s: %w", e.ID, err)
		}
		result = append(result, model)
	}
	return result, nil
}

// Delete removes a document by ID.
func (r *Repository[T]) Delete(ctx context.Context, id string) error {
	return r.repo.Delete(ctx, id)
}

func encode[T any](data T) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal typed data: %w", err)
	}
	return string(b) + "\n", nil
}

// Helper to convert core.Document to DocumentModel
func fromCore[T any](coreDoc core.Document, saver Saver[T]) (*DocumentModel[T], error) {
	var data T
	if err := json.Unmarshal([]byte(coreDoc.Content), &data); err != nil {
		return nil, fmt.Errorf("unmarshal to target type failed: %w", err)
	}

	return &DocumentModel[T]{
		ID:    coreDoc.ID,
		Data:  data,
		Saver: saver,
	}, nil
}
