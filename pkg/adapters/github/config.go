package github

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aretw0/notesync/pkg/core"
	"github.com/bmatcuk/doublestar/v4"
)

const (
	DefaultBaseURL   = "https://api.github.com"
	DefaultNotesDir  = "notes/"
	DefaultExtension = ".txt"
	DefaultTimeout   = 30 * time.Second

	// AcceptHeader selects the v3 JSON representation of the REST API.
	AcceptHeader = "application/vnd.github.v3+json"
)

// Config holds the configuration for the GitHub repository adapter.
// It is a plain value: copy it freely, nothing in this package mutates it.
type Config struct {
	Token    string // optional, required for writes and private repositories
	Owner    string
	Repo     string
	NotesDir string // root prefix of every note path, e.g. "notes/"
	Branch   string // empty means the repository default branch
	BaseURL  string

	// Extension is appended to document IDs that lack it.
	Extension string
	// Pattern filters listed file names (doublestar syntax). Defaults to "*" + Extension.
	Pattern string
	Timeout time.Duration

	ReadOnly   bool // Save and Delete fail with core.ErrReadOnly
	SkipVerify bool // Initialize does not probe the remote
}

// WithDefaults returns a copy of c with empty fields set to their defaults.
func (c Config) WithDefaults() Config {
	if c.NotesDir == "" {
		c.NotesDir = DefaultNotesDir
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	if c.Extension == "" {
		c.Extension = DefaultExtension
	}
	if c.Pattern == "" {
		c.Pattern = "*" + c.Extension
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	return c
}

// Resolve maps a note identifier to its path in the remote repository.
// Identifiers that already start with the notes root are returned unchanged.
//
// No validation is done: traversal segments, empty identifiers and
// characters the host rejects are passed through as given.
func (c Config) Resolve(identifier string) string {
	if strings.HasPrefix(identifier, c.NotesDir) {
		return identifier
	}
	return c.NotesDir + identifier
}

// Validate checks the values every remote call needs.
func (c Config) Validate() error {
	if c.Owner == "" {
		return fmt.Errorf("%w: owner is not set", core.ErrConfiguration)
	}
	if c.Repo == "" {
		return fmt.Errorf("%w: repository is not set", core.ErrConfiguration)
	}
	if !doublestar.ValidatePattern(c.Pattern) {
		return fmt.Errorf("%w: invalid note pattern %q", core.ErrConfiguration, c.Pattern)
	}
	return nil
}

// ValidateCredentials is Validate plus a mandatory token.
func (c Config) ValidateCredentials() error {
	if c.Token == "" {
		return fmt.Errorf("%w: token is not set", core.ErrConfiguration)
	}
	return c.Validate()
}

// matches reports whether a listed file name is a note.
func (c Config) matches(name string) bool {
	ok, err := doublestar.Match(c.Pattern, name)
	return err == nil && ok
}

// documentPath maps a document ID to a note identifier, adding the extension.
func (c Config) documentPath(id string) string {
	if path.Ext(id) == c.Extension {
		return id
	}
	return id + c.Extension
}

// documentID is the inverse of documentPath for a resolved remote path.
func (c Config) documentID(remotePath string) string {
	id := strings.TrimPrefix(remotePath, c.NotesDir)
	return strings.TrimSuffix(id, c.Extension)
}
