package main

import (
	"fmt"

	"github.com/aretw0/notesync"
	"github.com/spf13/cobra"
)

var (
	deleteMessage string
	deleteType    string
	deleteScope   string
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note",
	Long:  `Delete removes a note from the repository with a commit. Deleting a missing note fails.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		msg, err := commitMessage(deleteType, deleteScope, deleteMessage, "delete "+id)
		if err != nil {
			return err
		}

		svc, err := openService(cmd)
		if err != nil {
			return err
		}

		ctx := notesync.WithChangeReason(cmd.Context(), msg)
		if err := svc.DeleteDocument(ctx, id); err != nil {
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note deleted: %s\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().StringVarP(&deleteMessage, "message", "m", "", "Commit message")
	deleteCmd.Flags().StringVarP(&deleteType, "type", "t", "", "Change type (feat, fix, docs, ...)")
	deleteCmd.Flags().StringVarP(&deleteScope, "scope", "s", "", "Commit scope")
}
