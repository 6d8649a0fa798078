package typed

import (
	"context"
	"fmt"

	"github.com/aretw0/notesync/pkg/core"
)

// Service wraps a core.Service to provide type-safe access.
type Service[T any] struct {
	svc *core.Service
}

// NewService creates a new typed service wrapper.
func NewService[T any](svc *core.Service) *Service[T] {
	return &Service[T]{svc: svc}
}

// Save persists a typed document through the core Service validation.
func (s *Service[T]) Save(ctx context.Context, doc *DocumentModel[T]) error {
	content, err := encode(doc.Data)
	if err != nil {
		return err
	}

	if doc.Saver == nil {
		doc.Saver = s
	}
	return s.svc.SaveDocument(ctx, doc.ID, content)
}

// Get retrieves a document via Service.
func (s *Service[T]) Get(ctx context.Context, id string) (*DocumentModel[T], error) {
	coreDoc, err := s.svc.GetDocument(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromCore(coreDoc, s)
}

// List retrieves all documents via Service.
func (s *Service[T]) List(ctx context.Context) ([]*DocumentModel[T], error) {
	entries, err := s.svc.ListDocuments(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*DocumentModel[T], 0, len(entries))
	for _, e := range entries {
		model, err := s.Get(ctx, e.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to process document %s: %w", e.ID, err)
		}
		result = append(result, model)
	}
	return result, nil
}

// Delete removes a document via Service.
func (s *Service[T]) Delete(ctx context.Context, id string) error {
	return s.svc.DeleteDocument(ctx, id)
}
