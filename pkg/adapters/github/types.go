package github

import (
	"time"

	"github.com/aretw0/notesync/pkg/core"
)

// contentItem is a single element of a contents response, either the
// body of a file fetch or one item of a directory listing.
type contentItem struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Path        string  `json:"path"`
	SHA         string  `json:"sha"`
	Size        int64   `json:"size"`
	Encoding    string  `json:"encoding,omitempty"`
	Content     *string `json:"content,omitempty"`
	HTMLURL     string  `json:"html_url,omitempty"`
	DownloadURL string  `json:"download_url,omitempty"`
}

type putRequest struct {
	Message string  `json:"message"`
	Content string  `json:"content"`
	SHA     *string `json:"sha"`
	Branch  string  `json:"branch,omitempty"`
}

type deleteRequest struct {
	Message string `json:"message"`
	SHA     string `json:"sha"`
	Branch  string `json:"branch,omitempty"`
}

type writeResponse struct {
	Content *contentItem `json:"content"`
	Commit  Commit       `json:"commit"`
}

// apiError is the error body returned by the host.
type apiError struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url,omitempty"`
}

type repositoryInfo struct {
	FullName      string `json:"full_name"`
	Private       bool   `json:"private"`
	DefaultBranch string `json:"default_branch"`
}

type userInfo struct {
	Login string `json:"login"`
}

// Signature identifies the author or committer of a commit.
type Signature struct {
	Name  string    `json:"name" yaml:"name"`
	Email string    `json:"email" yaml:"email"`
	Date  time.Time `json:"date" yaml:"date"`
}

// Commit is the commit the host created for a write or delete.
type Commit struct {
	SHA       string    `json:"sha" yaml:"sha"`
	Message   string    `json:"message" yaml:"message"`
	HTMLURL   string    `json:"html_url" yaml:"html_url"`
	Author    Signature `json:"author" yaml:"author"`
	Committer Signature `json:"committer" yaml:"committer"`
}

// WriteResult is the host metadata for a completed write or delete.
// Entry is nil after a delete.
type WriteResult struct {
	Entry  *core.Entry `json:"entry,omitempty" yaml:"entry,omitempty"`
	Commit Commit      `json:"commit" yaml:"commit"`
}
