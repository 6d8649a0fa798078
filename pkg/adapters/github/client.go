package github

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aretw0/notesync/pkg/core"
	"github.com/imroc/req/v3"
)

const (
	HeaderAccept        = "Accept"
	HeaderAuthorization = "Authorization"
)

// UserAgent is sent with every request.
var UserAgent = "notesync"

// Client talks to the GitHub contents API for a single repository.
// It keeps no state between calls apart from its configuration, so one
// Client may be shared by concurrent callers.
type Client struct {
	config Config
	http   *req.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewClient creates a client for the given configuration.
// Configuration errors are reported by the first call, not here.
func NewClient(config Config, logger *slog.Logger) *Client {
	config = config.WithDefaults()
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	httpClient := req.C().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetUserAgent(UserAgent).
		SetCommonHeader(HeaderAccept, AcceptHeader).
		SetJsonMarshal(jsonMarshal).
		SetJsonUnmarshal(jsonUnmarshal)
	if config.Token != "" {
		httpClient.SetCommonHeader(HeaderAuthorization, "token "+config.Token)
	}

	return &Client{
		config: config,
		http:   httpClient,
		logger: logger,
		now:    time.Now,
	}
}

// Config returns the effective configuration, defaults applied.
func (c *Client) Config() Config {
	return c.config
}

// call describes one request against the API.
type call struct {
	op     string
	method string
	url    string
	path   string // note path reported in errors
	query  map[string]string
	body   any
}

// do sends a request and converts any non-2xx outcome into a *core.RemoteError.
func (c *Client) do(ctx context.Context, cl call) (*req.Response, error) {
	r := c.http.R().SetContext(ctx)
	if len(cl.query) > 0 {
		r.SetQueryParams(cl.query)
	}
	if cl.body != nil {
		r.SetBodyJsonMarshal(cl.body)
	}

	resp, err := r.Send(cl.method, cl.url)
	if resp != nil && resp.Response != nil {
		c.logger.Debug("github request", "op", cl.op, "method", cl.method, "url", cl.url, "status", resp.StatusCode)
	}
	if err := handleAPIError(cl, resp, err); err != nil {
		return nil, err
	}
	return resp, nil
}

// handleAPIError classifies the outcome of a request.
func handleAPIError(cl call, resp *req.Response, requestErr error) error {
	if resp == nil || resp.Response == nil {
		if requestErr == nil {
			requestErr = errors.New("no response")
		}
		return &core.RemoteError{Op: cl.op, Path: cl.path, Kind: core.ErrTransport, Err: requestErr}
	}

	if resp.IsSuccessState() {
		if requestErr != nil {
			return &core.RemoteError{Op: cl.op, Path: cl.path, Status: resp.StatusCode, Kind: core.ErrTransport, Err: requestErr}
		}
		return nil
	}

	var body apiError
	if raw := resp.Bytes(); len(raw) > 0 {
		if jsonUnmarshal(raw, &body) != nil {
			body.Message = strings.TrimSpace(string(raw))
		}
	}

	return &core.RemoteError{
		Op:      cl.op,
		Path:    cl.path,
		Status:  resp.StatusCode,
		Message: body.Message,
		Kind:    kindOf(resp.StatusCode),
	}
}

func kindOf(status int) error {
	switch status {
	case http.StatusNotFound:
		return core.ErrNotFound
	case http.StatusConflict, http.StatusUnprocessableEntity:
		return core.ErrConflict
	default:
		return core.ErrTransport
	}
}

// fail logs an error on its way out to the caller.
func (c *Client) fail(op, notePath string, err error) error {
	c.logger.Warn("github operation failed", "op", op, "path", notePath, "status", core.StatusCode(err), "error", err)
	return err
}

func (c *Client) repoURL() string {
	return "/repos/" + url.PathEscape(c.config.Owner) + "/" + url.PathEscape(c.config.Repo)
}

func (c *Client) contentsURL(notePath string) string {
	return c.repoURL() + "/contents/" + escapePath(notePath)
}

// refQuery selects the configured branch on reads.
func (c *Client) refQuery() map[string]string {
	if c.config.Branch == "" {
		return nil
	}
	return map[string]string{"ref": c.config.Branch}
}

func escapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// decodeBody unmarshals a successful response body.
func decodeBody(cl call, resp *req.Response, v any) error {
	if err := jsonUnmarshal(resp.Bytes(), v); err != nil {
		return &core.RemoteError{
			Op:     cl.op,
			Path:   cl.path,
			Status: resp.StatusCode,
			Kind:   core.ErrTransport,
			Err:    fmt.Errorf("unexpected response body: %w", err),
		}
	}
	return nil
}
