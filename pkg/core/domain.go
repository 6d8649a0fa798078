// Package core holds the note store domain shared by every storage adapter.
package core

import (
	"context"
	"time"
)

// Document is the central entity of the domain.
// It represents a text note identified by an ID.
type Document struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
}

// Entry is a snapshot of a single note as exposed by a listing.
// It is not persisted by this module.
type Entry struct {
	ID           string    `json:"id" yaml:"id"`
	Name         string    `json:"name" yaml:"name"`
	Path         string    `json:"path" yaml:"path"`
	Size         int64     `json:"size" yaml:"size"`
	SHA          string    `json:"sha,omitempty" yaml:"sha,omitempty"`
	LastModified time.Time `json:"last_modified" yaml:"last_modified"`

	// LastModifiedEstimated is set when the backend did not report a
	// timestamp and LastModified holds the listing time instead.
	LastModifiedEstimated bool `json:"last_modified_estimated,omitempty" yaml:"last_modified_estimated,omitempty"`
}

type contextKey string

// ChangeReasonKey is the context key for passing the commit message used by Save/Delete.
const ChangeReasonKey contextKey = "change_reason"

// ChangeReason returns the change reason stored in ctx, or fallback.
func ChangeReason(ctx context.Context, fallback string) string {
	if val, ok := ctx.Value(ChangeReasonKey).(string); ok && val != "" {
		return val
	}
	return fallback
}
