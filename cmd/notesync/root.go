package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notesync"
	"github.com/aretw0/notesync/internal/platform"
	"github.com/aretw0/notesync/pkg/core"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	envFile string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesync",
	Short: "A note store backed by a directory of a GitHub repository",
	Long: `notesync treats a directory of a GitHub repository as a flat store of text notes.
Every write is a commit made through the contents API, guarded by the blob SHA
of the version it replaces.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05.000",
			NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
		}))
		slog.SetDefault(logger)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&envFile, "env-file", "", "Dotenv file with GITHUB_* settings (default: nearest .env)")
	flags.String("token", "", "Personal access token (GITHUB_TOKEN)")
	flags.String("owner", "", "Repository owner (GITHUB_OWNER)")
	flags.String("repo", "", "Repository name (GITHUB_REPO)")
	flags.String("branch", "", "Branch to read from and commit to (GITHUB_BRANCH)")
	flags.String("notes-dir", "", "Directory holding the notes (GITHUB_NOTES_DIR)")
	flags.String("api-url", "", "API base URL (GITHUB_API_URL)")
}

// loadConfig resolves the adapter configuration from, in order of
// precedence, flags, the environment and the dotenv file.
func loadConfig(cmd *cobra.Command) (notesync.Config, error) {
	v := platform.NewConfigLoader()

	path := envFile
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = platform.FindEnvFile(wd)
		}
	}
	if path != "" {
		slog.Debug("reading env file", "path", path)
		if err := platform.ReadEnvFile(v, path); err != nil {
			return notesync.Config{}, err
		}
	}

	bindings := map[string]string{
		platform.KeyToken:    "token",
		platform.KeyOwner:    "owner",
		platform.KeyRepo:     "repo",
		platform.KeyBranch:   "branch",
		platform.KeyNotesDir: "notes-dir",
		platform.KeyAPIURL:   "api-url",
	}
	for key, flag := range bindings {
		if err := bindChanged(v, key, cmd.Flags().Lookup(flag)); err != nil {
			return notesync.Config{}, err
		}
	}

	return platform.ConfigFromViper(v), nil
}

// openService builds the service without probing the repository; the
// first remote call reports configuration and access problems.
func openService(cmd *cobra.Command, opts ...notesync.Option) (*core.Service, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	opts = append([]notesync.Option{
		notesync.WithGitHub(cfg),
		notesync.WithLogger(slog.Default()),
		notesync.WithSkipVerify(true),
	}, opts...)

	svc, err := notesync.New(cmd.Context(), "", opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notesync: %w", err)
	}
	return svc, nil
}
