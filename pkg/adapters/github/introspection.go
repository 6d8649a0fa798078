package github

import (
	"github.com/aretw0/introspection"
)

// RepositoryState exposes internal state for observability.
// The token itself is never included.
type RepositoryState struct {
	BaseURL         string `json:"base_url"`
	Owner           string `json:"owner"`
	Repo            string `json:"repo"`
	Branch          string `json:"branch,omitempty"`
	NotesDir        string `json:"notes_dir"`
	Pattern         string `json:"pattern"`
	ReadOnly        bool   `json:"read_only"`
	TokenConfigured bool   `json:"token_configured"`
}

// State implements introspection.Introspectable.
func (r *Repository) State() any {
	return RepositoryState{
		BaseURL:         r.config.BaseURL,
		Owner:           r.config.Owner,
		Repo:            r.config.Repo,
		Branch:          r.config.Branch,
		NotesDir:        r.config.NotesDir,
		Pattern:         r.config.Pattern,
		ReadOnly:        r.config.ReadOnly,
		TokenConfigured: r.config.Token != "",
	}
}

// ComponentType implements introspection.Component.
func (r *Repository) ComponentType() string {
	return "github"
}

var _ introspection.Introspectable = (*Repository)(nil)
var _ introspection.Component = (*Repository)(nil)
