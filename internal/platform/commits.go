package platform

import (
	"slices"
	"strings"
)

// Conventional Commit types accepted by the CLI.
const (
	CommitTypeFeat     = "feat"
	CommitTypeFix      = "fix"
	CommitTypeDocs     = "docs"
	CommitTypeStyle    = "style"
	CommitTypeRefactor = "refactor"
	CommitTypePerf     = "perf"
	CommitTypeTest     = "test"
	CommitTypeChore    = "chore"
)

var commitTypes = []string{
	CommitTypeFeat, CommitTypeFix, CommitTypeDocs, CommitTypeStyle,
	CommitTypeRefactor, CommitTypePerf, CommitTypeTest, CommitTypeChore,
}

// Footer marks commits made through notesync.
const Footer = "Via: notesync"

// IsCommitType reports whether ctype is a known Conventional Commit type.
func IsCommitType(ctype string) bool {
	return slices.Contains(commitTypes, ctype)
}

// FormatChangeReason builds a Conventional Commit message:
//
//	<type>(<scope>): <subject>
//
//	<body>
//
//	Via: notesync
//
// An empty type falls back to chore; empty scope and body are left out.
func FormatChangeReason(ctype, scope, subject, body string) string {
	if ctype == "" {
		ctype = CommitTypeChore
	}
	header := ctype
	if scope != "" {
		header += "(" + scope + ")"
	}

	parts := []string{header + ": " + subject}
	if b := strings.TrimSpace(body); b != "" {
		parts = append(parts, b)
	}
	parts = append(parts, Footer)
	return strings.Join(parts, "\n\n")
}

// AppendFooter adds the footer to a free-form message, once.
func AppendFooter(msg string) string {
	if strings.Contains(msg, Footer) {
		return msg
	}
	return strings.TrimRight(msg, "\n") + "\n\n" + Footer
}
