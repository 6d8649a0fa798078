package main

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/notesync/pkg/adapters/github"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check token, repository and branch access",
	Long: `Check runs the same probes as a first-time setup: the login the token
belongs to, access to the repository and, when configured, the branch.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}
		repo, ok := svc.Repository().(*github.Repository)
		if !ok {
			return fmt.Errorf("check is only supported by the github adapter")
		}

		slog.Debug("service state", "service", svc.State(), "repository", repo.State())

		ctx := cmd.Context()
		client := repo.Client()
		cfg := client.Config()
		out := cmd.OutOrStdout()

		login, err := client.Authenticated(ctx)
		if err != nil {
			return fmt.Errorf("token check failed: %w", err)
		}
		fmt.Fprintf(out, "token:      ok (%s)\n", login)

		if err := svc.VerifyConnection(ctx); err != nil {
			return fmt.Errorf("repository check failed: %w", err)
		}
		fmt.Fprintf(out, "repository: ok (%s/%s)\n", cfg.Owner, cfg.Repo)

		if cfg.Branch != "" {
			if err := client.VerifyBranch(ctx); err != nil {
				return fmt.Errorf("branch check failed: %w", err)
			}
			fmt.Fprintf(out, "branch:     ok (%s)\n", cfg.Branch)
		}

		fmt.Fprintf(out, "notes dir:  %s\n", cfg.NotesDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
