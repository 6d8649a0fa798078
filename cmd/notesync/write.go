package main

import (
	"fmt"
	"io"

	"github.com/aretw0/notesync"
	"github.com/aretw0/notesync/internal/platform"
	"github.com/spf13/cobra"
)

var (
	writeID      string
	writeContent string
	changeReason string
	writeType    string
	writeScope   string
)

// writeCmd represents the write command
var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Create or update a note",
	Long: `Create or update the note with the given ID. The content is taken from
--content, or read from stdin when the flag is absent.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		content := writeContent
		if !cmd.Flags().Changed("content") {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read content from stdin: %w", err)
			}
			content = string(b)
		}

		msg, err := commitMessage(writeType, writeScope, changeReason, "update "+writeID)
		if err != nil {
			return err
		}

		svc, err := openService(cmd)
		if err != nil {
			return err
		}

		ctx := notesync.WithChangeReason(cmd.Context(), msg)
		if err := svc.SaveDocument(ctx, writeID, content); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note '%s' saved and committed.\n", writeID)
		return nil
	},
}

// commitMessage builds the commit message of a write or delete.
// With a type it is a Conventional Commit; a bare message only gets the
// footer; with neither a docs(notes) message is generated.
func commitMessage(ctype, scope, message, fallback string) (string, error) {
	if ctype != "" {
		if !platform.IsCommitType(ctype) {
			return "", fmt.Errorf("unknown change type %q", ctype)
		}
		if message == "" {
			message = fallback
		}
		return notesync.FormatChangeReason(ctype, scope, message, ""), nil
	}
	if message != "" {
		return notesync.AppendFooter(message), nil
	}
	if scope == "" {
		scope = "notes"
	}
	return notesync.FormatChangeReason(notesync.CommitTypeDocs, scope, fallback, ""), nil
}

func init() {
	rootCmd.AddCommand(writeCmd)
	writeCmd.Flags().StringVar(&writeID, "id", "", "Note ID (file name without extension)")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "Note content (default: stdin)")
	writeCmd.Flags().StringVarP(&changeReason, "message", "m", "", "Commit message")
	writeCmd.Flags().StringVarP(&writeType, "type", "t", "", "Change type (feat, fix, docs, ...)")
	writeCmd.Flags().StringVarP(&writeScope, "scope", "s", "", "Commit scope")
	writeCmd.MarkFlagRequired("id")
}
