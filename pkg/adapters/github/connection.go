package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/aretw0/notesync/pkg/core"
)

// VerifyConnection checks that the token, owner and repository resolve to
// an accessible repository. Missing values fail with core.ErrConfiguration
// before any request is sent; any non-2xx answer is returned as an error.
func (c *Client) VerifyConnection(ctx context.Context) error {
	if err := c.config.ValidateCredentials(); err != nil {
		return c.fail("verify", "", err)
	}

	cl := call{op: "verify", method: http.MethodGet, url: c.repoURL()}
	resp, err := c.do(ctx, cl)
	if err != nil {
		return c.fail("verify", "", err)
	}

	var info repositoryInfo
	if err := decodeBody(cl, resp, &info); err == nil {
		c.logger.Debug("repository reachable", "repo", info.FullName, "private", info.Private, "default_branch", info.DefaultBranch)
	}
	return nil
}

// VerifyBranch checks that the configured branch exists.
// It is a no-op when no branch is configured.
func (c *Client) VerifyBranch(ctx context.Context) error {
	if err := c.config.ValidateCredentials(); err != nil {
		return c.fail("branch", "", err)
	}
	if c.config.Branch == "" {
		return nil
	}

	cl := call{
		op:     "branch",
		method: http.MethodGet,
		url:    c.repoURL() + "/branches/" + url.PathEscape(c.config.Branch),
	}
	if _, err := c.do(ctx, cl); err != nil {
		return c.fail("branch", c.config.Branch, err)
	}
	return nil
}

// Authenticated returns the login the configured token belongs to.
func (c *Client) Authenticated(ctx context.Context) (string, error) {
	if c.config.Token == "" {
		return "", c.fail("user", "", fmt.Errorf("%w: token is not set", core.ErrConfiguration))
	}

	cl := call{op: "user", method: http.MethodGet, url: "/user"}
	resp, err := c.do(ctx, cl)
	if err != nil {
		return "", c.fail("user", "", err)
	}

	var user userInfo
	if err := decodeBody(cl, resp, &user); err != nil {
		return "", c.fail("user", "", err)
	}
	return user.Login, nil
}
