package platform

import (
	"context"

	"github.com/aretw0/notesync/pkg/core"
)

// New creates a Service on top of the repository selected by the options.
//
//	svc, err := notesync.New(ctx, "octo/notes", notesync.WithGitHub(cfg))
func New(ctx context.Context, uri string, opts ...Option) (*core.Service, error) {
	repo, err := Init(ctx, uri, opts...)
	if err != nil {
		return nil, err
	}

	return core.NewService(repo), nil
}
