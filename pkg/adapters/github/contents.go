package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/aretw0/notesync/pkg/core"
)

// GetContent returns the text of a note.
// A missing note is reported as core.ErrNotFound; a response without
// inline content (a directory, or a file too large to inline) as
// core.ErrContentEmpty.
func (c *Client) GetContent(ctx context.Context, identifier string) (string, error) {
	notePath := c.config.Resolve(identifier)
	if err := c.config.Validate(); err != nil {
		return "", c.fail("get", notePath, err)
	}

	item, err := c.fetch(ctx, "get", notePath)
	if err != nil {
		return "", c.fail("get", notePath, err)
	}
	if item.Content == nil || item.Encoding == "none" {
		return "", c.fail("get", notePath, &core.RemoteError{Op: "get", Path: notePath, Status: http.StatusOK, Kind: core.ErrContentEmpty})
	}

	text, err := Decode(*item.Content)
	if err != nil {
		return "", c.fail("get", notePath, &core.RemoteError{Op: "get", Path: notePath, Status: http.StatusOK, Kind: core.ErrTransport, Err: err})
	}
	return text, nil
}

// PutContent creates or replaces a note.
//
// The current revision token is read right before the write and sent
// with it; a write racing with another writer is rejected by the host
// and reported as core.ErrConflict. It is never retried.
func (c *Client) PutContent(ctx context.Context, identifier, text, message string) (*WriteResult, error) {
	notePath := c.config.Resolve(identifier)
	if err := c.config.Validate(); err != nil {
		return nil, c.fail("put", notePath, err)
	}

	sha, err := c.revision(ctx, notePath)
	if err != nil {
		if !errors.Is(err, core.ErrNotFound) {
			return nil, c.fail("put", notePath, err)
		}
		sha = nil
	}

	cl := call{
		op:     "put",
		method: http.MethodPut,
		url:    c.contentsURL(notePath),
		path:   notePath,
		body: putRequest{
			Message: message,
			Content: Encode(text),
			SHA:     sha,
			Branch:  c.config.Branch,
		},
	}
	resp, err := c.do(ctx, cl)
	if err != nil {
		return nil, c.fail("put", notePath, err)
	}

	var out writeResponse
	if err := decodeBody(cl, resp, &out); err != nil {
		return nil, c.fail("put", notePath, err)
	}
	c.logger.Debug("note written", "path", notePath, "created", sha == nil, "commit", out.Commit.SHA)
	return c.writeResult(out), nil
}

// DeleteEntry removes a note. The note must exist: its revision token is
// required by the host, so a missing note fails with core.ErrNotFound.
func (c *Client) DeleteEntry(ctx context.Context, identifier, message string) (*WriteResult, error) {
	notePath := c.config.Resolve(identifier)
	if err := c.config.Validate(); err != nil {
		return nil, c.fail("delete", notePath, err)
	}

	sha, err := c.revision(ctx, notePath)
	if err != nil {
		return nil, c.fail("delete", notePath, err)
	}

	cl := call{
		op:     "delete",
		method: http.MethodDelete,
		url:    c.contentsURL(notePath),
		path:   notePath,
		body: deleteRequest{
			Message: message,
			SHA:     *sha,
			Branch:  c.config.Branch,
		},
	}
	resp, err := c.do(ctx, cl)
	if err != nil {
		return nil, c.fail("delete", notePath, err)
	}

	var out writeResponse
	if err := decodeBody(cl, resp, &out); err != nil {
		return nil, c.fail("delete", notePath, err)
	}
	c.logger.Debug("note deleted", "path", notePath, "commit", out.Commit.SHA)
	return c.writeResult(out), nil
}

// ListEntries returns the notes directly under the notes root.
// Only files matching the note pattern are returned. A root that does not
// exist yet yields an empty slice and no error.
func (c *Client) ListEntries(ctx context.Context) ([]core.Entry, error) {
	root := strings.TrimSuffix(c.config.Resolve(""), "/")
	if err := c.config.Validate(); err != nil {
		return nil, c.fail("list", root, err)
	}

	cl := call{
		op:     "list",
		method: http.MethodGet,
		url:    c.contentsURL(root),
		path:   root,
		query:  c.refQuery(),
	}
	resp, err := c.do(ctx, cl)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			c.logger.Debug("notes root does not exist", "path", root)
			return []core.Entry{}, nil
		}
		return nil, c.fail("list", root, err)
	}

	var items []contentItem
	if err := decodeBody(cl, resp, &items); err != nil {
		return nil, c.fail("list", root, err)
	}

	now := c.now()
	entries := make([]core.Entry, 0, len(items))
	for _, item := range items {
		if item.Type != "file" || !c.config.matches(item.Name) {
			continue
		}
		entries = append(entries, core.Entry{
			ID:                    c.config.documentID(item.Path),
			Name:                  item.Name,
			Path:                  item.Path,
			Size:                  item.Size,
			SHA:                   item.SHA,
			LastModified:          now,
			LastModifiedEstimated: true,
		})
	}
	return entries, nil
}

// Revision returns the current revision token (blob SHA) of a note.
func (c *Client) Revision(ctx context.Context, identifier string) (string, error) {
	notePath := c.config.Resolve(identifier)
	if err := c.config.Validate(); err != nil {
		return "", c.fail("revision", notePath, err)
	}
	sha, err := c.revision(ctx, notePath)
	if err != nil {
		return "", c.fail("revision", notePath, err)
	}
	return *sha, nil
}

// revision fetches the token of an already resolved path. Only files have
// one: a directory or symlink at the path fails with core.ErrContentEmpty.
func (c *Client) revision(ctx context.Context, notePath string) (*string, error) {
	item, err := c.fetch(ctx, "revision", notePath)
	if err != nil {
		return nil, err
	}
	if item.Type != "file" {
		return nil, &core.RemoteError{
			Op:      "revision",
			Path:    notePath,
			Status:  http.StatusOK,
			Message: fmt.Sprintf("path is a %s, not a file", item.Type),
			Kind:    core.ErrContentEmpty,
		}
	}
	if item.SHA == "" {
		return nil, &core.RemoteError{
			Op:     "revision",
			Path:   notePath,
			Status: http.StatusOK,
			Kind:   core.ErrTransport,
			Err:    errors.New("response carries no sha"),
		}
	}
	return &item.SHA, nil
}

// fetch reads the contents resource of a resolved path. A directory
// listing comes back as an item of type "dir" without content.
func (c *Client) fetch(ctx context.Context, op, notePath string) (*contentItem, error) {
	cl := call{
		op:     op,
		method: http.MethodGet,
		url:    c.contentsURL(notePath),
		path:   notePath,
		query:  c.refQuery(),
	}
	resp, err := c.do(ctx, cl)
	if err != nil {
		return nil, err
	}

	if bytes.HasPrefix(bytes.TrimSpace(resp.Bytes()), []byte("[")) {
		return &contentItem{Type: "dir", Path: notePath}, nil
	}

	var item contentItem
	if err := decodeBody(cl, resp, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *Client) writeResult(out writeResponse) *WriteResult {
	result := &WriteResult{Commit: out.Commit}
	if out.Content == nil {
		return result
	}

	entry := &core.Entry{
		ID:           c.config.documentID(out.Content.Path),
		Name:         out.Content.Name,
		Path:         out.Content.Path,
		Size:         out.Content.Size,
		SHA:          out.Content.SHA,
		LastModified: out.Commit.Committer.Date,
	}
	if entry.LastModified.IsZero() {
		entry.LastModified = c.now()
		entry.LastModifiedEstimated = true
	}
	result.Entry = entry
	return result
}
