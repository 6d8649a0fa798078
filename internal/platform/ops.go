package platform

import (
	"context"
	"fmt"
	"strings"

	"github.com/aretw0/notesync/pkg/adapters/github"
	"github.com/aretw0/notesync/pkg/core"
)

// Init builds the repository selected by the options and runs its initialization.
// The 'uri' argument is adapter-specific. For 'github' it is "owner/repo",
// optionally followed by "@branch"; an empty uri keeps the configured values.
func Init(ctx context.Context, uri string, opts ...Option) (core.Repository, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// 1. Check for injected repository
	if o.repository != nil {
		return o.repository, nil
	}

	// 2. Initialize based on Adapter
	var repo core.Repository
	var err error

	switch o.adapter {
	case "github":
		repo, err = initGitHub(uri, o)
	default:
		return nil, fmt.Errorf("unknown adapter: %s", o.adapter)
	}

	if err != nil {
		return nil, err
	}

	// 3. Run Initialization
	if err := repo.Initialize(ctx); err != nil {
		return nil, err
	}

	return repo, nil
}

// initGitHub handles the initialization logic for the GitHub adapter.
func initGitHub(uri string, o *options) (core.Repository, error) {
	cfg := o.github

	if uri != "" {
		owner, repo, branch, err := ParseRepoURI(uri)
		if err != nil {
			return nil, err
		}
		cfg.Owner, cfg.Repo = owner, repo
		if branch != "" {
			cfg.Branch = branch
		}
	}

	if o.logger != nil {
		o.logger.Debug("using github adapter",
			"owner", cfg.Owner,
			"repo", cfg.Repo,
			"branch", cfg.Branch,
			"notes_dir", cfg.NotesDir,
			"read_only", cfg.ReadOnly,
		)
	}

	return github.NewRepository(cfg, o.logger), nil
}

// ParseRepoURI splits "owner/repo[@branch]".
func ParseRepoURI(uri string) (owner, repo, branch string, err error) {
	slug, branch, _ := strings.Cut(uri, "@")
	owner, repo, ok := strings.Cut(slug, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", "", fmt.Errorf("%w: repository must be owner/repo, got %q", core.ErrConfiguration, uri)
	}
	return owner, repo, branch, nil
}
