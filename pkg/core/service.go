package core

import (
	"context"
	"errors"
)

var errEmptyID = errors.New("document ID cannot be empty")

// Service handles the business logic for notes.
type Service struct {
	repo Repository
}

// NewService creates a new Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SaveDocument saves a note with business validation.
func (s *Service) SaveDocument(ctx context.Context, id string, content string) error {
	if id == "" {
		return errEmptyID
	}

	return s.repo.Save(ctx, Document{ID: id, Content: content})
}

// GetDocument retrieves a note.
func (s *Service) GetDocument(ctx context.Context, id string) (Document, error) {
	if id == "" {
		return Document{}, errEmptyID
	}
	return s.repo.Get(ctx, id)
}

// ListDocuments retrieves the entries of all notes.
func (s *Service) ListDocuments(ctx context.Context) ([]Entry, error) {
	return s.repo.List(ctx)
}

// DeleteDocument removes a note.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	return s.repo.Delete(ctx, id)
}

// VerifyConnection probes the backing store if it supports it.
func (s *Service) VerifyConnection(ctx context.Context) error {
	v, ok := s.repo.(Verifiable)
	if !ok {
		return errors.New("repository does not support connection checks")
	}
	return v.VerifyConnection(ctx)
}

// Repository returns the underlying repository.
func (s *Service) Repository() Repository {
	return s.repo
}
