package notesync

import (
	"context"
	"log/slog"

	"github.com/aretw0/notesync/internal/platform"
	"github.com/aretw0/notesync/pkg/adapters/github"
	"github.com/aretw0/notesync/pkg/core"
	"github.com/aretw0/notesync/pkg/typed"
)

// --- Types ---

// Config is the configuration of the GitHub adapter.
type Config = github.Config

// DocumentModel is a public alias for the typed document model.
type DocumentModel[T any] = typed.DocumentModel[T]

// TypedRepository is a public alias for the typed repository.
type TypedRepository[T any] = typed.Repository[T]

// TypedService is a public alias for the typed service.
type TypedService[T any] = typed.Service[T]

// --- Configuration ---

// Option defines a functional option for configuring notesync.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithGitHub replaces the whole GitHub adapter configuration.
func WithGitHub(cfg Config) Option {
	return platform.WithGitHub(cfg)
}

// WithBranch selects the branch notes are read from and committed to.
func WithBranch(branch string) Option {
	return platform.WithBranch(branch)
}

// WithNotesDir sets the path prefix under which notes live.
func WithNotesDir(dir string) Option {
	return platform.WithNotesDir(dir)
}

// WithReadOnly makes Save and Delete fail with core.ErrReadOnly.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithSkipVerify disables the connectivity probe run during initialization.
func WithSkipVerify(skip bool) Option {
	return platform.WithSkipVerify(skip)
}

// LoadConfig reads GITHUB_* variables from the environment and, when
// envFile is not empty, from that dotenv file.
func LoadConfig(envFile string) (Config, error) {
	return platform.LoadConfig(envFile)
}

// --- Factory ---

// New creates a new notesync Service. uri is "owner/repo[@branch]" or empty.
func New(ctx context.Context, uri string, opts ...Option) (*core.Service, error) {
	return platform.New(ctx, uri, opts...)
}

// Init initializes a repository explicitly.
func Init(ctx context.Context, uri string, opts ...Option) (core.Repository, error) {
	return platform.Init(ctx, uri, opts...)
}

// --- Typed Factories ---

// NewTypedRepository creates a type-safe wrapper around an existing repository.
func NewTypedRepository[T any](repo core.Repository) *typed.Repository[T] {
	return typed.NewRepository[T](repo)
}

// NewTypedService creates a type-safe wrapper around an existing service.
func NewTypedService[T any](svc *core.Service) *typed.Service[T] {
	return typed.NewService[T](svc)
}

// OpenTypedService simplifies creating a TypedService from a repository URI.
func OpenTypedService[T any](ctx context.Context, uri string, opts ...Option) (*typed.Service[T], error) {
	svc, err := New(ctx, uri, opts...)
	if err != nil {
		return nil, err
	}
	return typed.NewService[T](svc), nil
}

// --- Semantic Commits ---

const (
	CommitTypeFeat     = platform.CommitTypeFeat
	CommitTypeFix      = platform.CommitTypeFix
	CommitTypeDocs     = platform.CommitTypeDocs
	CommitTypeStyle    = platform.CommitTypeStyle
	CommitTypeRefactor = platform.CommitTypeRefactor
	CommitTypePerf     = platform.CommitTypePerf
	CommitTypeTest     = platform.CommitTypeTest
	CommitTypeChore    = platform.CommitTypeChore
)

// FormatChangeReason builds a Conventional Commit message.
func FormatChangeReason(ctype, scope, subject, body string) string {
	return platform.FormatChangeReason(ctype, scope, subject, body)
}

// AppendFooter appends the notesync footer to an arbitrary message.
func AppendFooter(msg string) string {
	return platform.AppendFooter(msg)
}

// WithChangeReason returns a context carrying the commit message for the next Save or Delete.
func WithChangeReason(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, core.ChangeReasonKey, msg)
}
