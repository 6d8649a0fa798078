package platform

import (
	"log/slog"

	"github.com/aretw0/notesync/pkg/adapters/github"
	"github.com/aretw0/notesync/pkg/core"
)

// options holds the internal configuration for the notesync service.
type options struct {
	repository core.Repository
	logger     *slog.Logger
	adapter    string
	github     github.Config
}

// Option defines a functional option for configuring notesync.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		adapter: "github",
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository allows injecting a custom storage adapter (e.g. a mock).
// If provided, the adapter selected by name is skipped.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithAdapter allows specifying the storage adapter to use by name.
// Defaults to "github".
func WithAdapter(name string) Option {
	return func(o *options) {
		o.adapter = name
	}
}

// WithGitHub replaces the whole configuration of the github adapter.
// Pass it before the single-field options, which override it.
func WithGitHub(cfg github.Config) Option {
	return func(o *options) {
		o.github = cfg
	}
}

// WithBranch selects the branch notes are read from and committed to.
func WithBranch(branch string) Option {
	return func(o *options) {
		o.github.Branch = branch
	}
}

// WithNotesDir sets the path prefix under which notes live.
func WithNotesDir(dir string) Option {
	return func(o *options) {
		o.github.NotesDir = dir
	}
}

// WithReadOnly enables read-only mode.
// In this mode Save and Delete return core.ErrReadOnly without contacting the host.
func WithReadOnly(enabled bool) Option {
	return func(o *options) {
		o.github.ReadOnly = enabled
	}
}

// WithSkipVerify disables the connectivity probe run during initialization.
// Useful for anonymous access to public repositories, which has no token to verify.
func WithSkipVerify(skip bool) Option {
	return func(o *options) {
		o.github.SkipVerify = skip
	}
}
