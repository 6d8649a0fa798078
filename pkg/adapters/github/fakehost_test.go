package github_test

import (
	"crypto/sha1"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/aretw0/notesync/pkg/adapters/github"
	"github.com/goccy/go-json"
)

const (
	testOwner = "octo"
	testRepo  = "notes-repo"
	testToken = "s3cret"
)

type fakeFile struct {
	content string
	kind    string // "file" unless set
}

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Accept string
	Body   map[string]any
}

// fakeHost is an in-memory stand-in for the contents API. It enforces the
// blob SHA contract of PUT and DELETE the way the real host does.
type fakeHost struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	files    map[string]fakeFile
	branches map[string]bool
	requests []recordedRequest
	failures map[string]int // "METHOD path" -> forced status
	commits  int

	// afterRead runs after a GET of a contents path has been answered.
	afterRead func(path string)
}

func newFakeHost(t *testing.T) *fakeHost {
	t.Helper()
	h := &fakeHost{
		t:        t,
		files:    make(map[string]fakeFile),
		branches: map[string]bool{"main": true},
		failures: make(map[string]int),
	}
	h.server = httptest.NewServer(http.HandlerFunc(h.serve))
	t.Cleanup(h.server.Close)
	return h
}

func (h *fakeHost) config() github.Config {
	return github.Config{
		Token:   testToken,
		Owner:   testOwner,
		Repo:    testRepo,
		BaseURL: h.server.URL,
	}
}

func (h *fakeHost) client() *github.Client {
	return github.NewClient(h.config(), nil)
}

func blobSHA(content string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("blob %d\x00%s", len(content), content)))
	return hex.EncodeToString(sum[:])
}

func (h *fakeHost) setFile(path, content string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.files[path] = fakeFile{content: content}
}

func (h *fakeHost) setKind(path, kind string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.files[path] = fakeFile{kind: kind}
}

func (h *fakeHost) file(path string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	f, ok := h.files[path]
	return f.content, ok
}

func (h *fakeHost) failWith(method, path string, status int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failures[method+" "+path] = status
}

func (h *fakeHost) recorded() []recordedRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]recordedRequest(nil), h.requests...)
}

// calls returns the "METHOD path" of every request received.
func (h *fakeHost) calls() []string {
	var out []string
	for _, r := range h.recorded() {
		out = append(out, r.Method+" "+r.Path)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

func (h *fakeHost) serve(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Accept: r.Header.Get("Accept"),
	}
	if r.Body != nil && r.ContentLength != 0 {
		_ = json.NewDecoder(r.Body).Decode(&rec.Body)
	}

	h.mu.Lock()
	h.requests = append(h.requests, rec)
	forced, isForced := h.failures[r.Method+" "+r.URL.Path]
	h.mu.Unlock()

	if isForced {
		writeError(w, forced, http.StatusText(forced))
		return
	}
	if rec.Auth != "token "+testToken {
		writeError(w, http.StatusUnauthorized, "Bad credentials")
		return
	}

	repoPrefix := "/repos/" + testOwner + "/" + testRepo
	switch {
	case r.URL.Path == "/user" && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]string{"login": "octocat"})
	case r.URL.Path == repoPrefix && r.Method == http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"full_name":      testOwner + "/" + testRepo,
			"private":        true,
			"default_branch": "main",
		})
	case strings.HasPrefix(r.URL.Path, repoPrefix+"/branches/"):
		name := strings.TrimPrefix(r.URL.Path, repoPrefix+"/branches/")
		if !h.branches[name] {
			writeError(w, http.StatusNotFound, "Branch not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"name": name})
	case strings.HasPrefix(r.URL.Path, repoPrefix+"/contents/"):
		path := strings.TrimPrefix(r.URL.Path, repoPrefix+"/contents/")
		h.serveContents(w, r.Method, path, rec.Body)
	default:
		writeError(w, http.StatusNotFound, "Not Found")
	}
}

func (h *fakeHost) serveContents(w http.ResponseWriter, method, path string, body map[string]any) {
	switch method {
	case http.MethodGet:
		h.getContents(w, path)
		if h.afterRead != nil {
			h.afterRead(path)
		}
	case http.MethodPut:
		h.putContents(w, path, body)
	case http.MethodDelete:
		h.deleteContents(w, path, body)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func item(path string, f fakeFile) map[string]any {
	kind := f.kind
	if kind == "" {
		kind = "file"
	}
	name := path[strings.LastIndex(path, "/")+1:]
	return map[string]any{
		"type": kind,
		"name": name,
		"path": path,
		"sha":  blobSHA(f.content),
		"size": len(f.content),
	}
}

// wrap breaks base64 at 60 columns like the real host.
func wrap(s string) string {
	var sb strings.Builder
	for len(s) > 60 {
		sb.WriteString(s[:60])
		sb.WriteString("\n")
		s = s[60:]
	}
	sb.WriteString(s)
	sb.WriteString("\n")
	return sb.String()
}

func (h *fakeHost) getContents(w http.ResponseWriter, path string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f, ok := h.files[path]; ok {
		out := item(path, f)
		if out["type"] == "file" {
			out["encoding"] = "base64"
			out["content"] = wrap(base64.StdEncoding.EncodeToString([]byte(f.content)))
		}
		writeJSON(w, http.StatusOK, out)
		return
	}

	prefix := strings.TrimSuffix(path, "/") + "/"
	if path == "" {
		prefix = ""
	}
	seen := map[string]bool{}
	listing := []map[string]any{}
	for p, f := range h.files {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		rest := strings.TrimPrefix(p, prefix)
		if i := strings.Index(rest, "/"); i >= 0 {
			dir := prefix + rest[:i]
			if !seen[dir] {
				seen[dir] = true
				listing = append(listing, map[string]any{"type": "dir", "name": rest[:i], "path": dir, "sha": blobSHA(dir), "size": 0})
			}
			continue
		}
		listing = append(listing, item(p, f))
	}
	if len(listing) == 0 {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	sort.Slice(listing, func(i, j int) bool {
		return listing[i]["path"].(string) < listing[j]["path"].(string)
	})
	writeJSON(w, http.StatusOK, listing)
}

func (h *fakeHost) commit(message string) map[string]any {
	h.commits++
	return map[string]any{
		"sha":      fmt.Sprintf("c%039d", h.commits),
		"message":  message,
		"html_url": fmt.Sprintf("https://example.test/commit/%d", h.commits),
		"committer": map[string]any{
			"name":  "octocat",
			"email": "octocat@example.test",
			"date":  "2026-01-02T03:04:05Z",
		},
	}
}

func (h *fakeHost) putContents(w http.ResponseWriter, path string, body map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	message, _ := body["message"].(string)
	encoded, _ := body["content"].(string)
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		writeError(w, http.StatusBadRequest, "content is not valid Base64")
		return
	}
	sha, hasSHA := body["sha"].(string)

	status := http.StatusCreated
	if existing, ok := h.files[path]; ok {
		if !hasSHA {
			writeError(w, http.StatusUnprocessableEntity, "Invalid request.\n\n\"sha\" wasn't supplied.")
			return
		}
		if sha != blobSHA(existing.content) {
			writeError(w, http.StatusConflict, fmt.Sprintf("%s does not match %s", path, sha))
			return
		}
		status = http.StatusOK
	}

	f := fakeFile{content: string(data)}
	h.files[path] = f
	writeJSON(w, status, map[string]any{
		"content": item(path, f),
		"commit":  h.commit(message),
	})
}

func (h *fakeHost) deleteContents(w http.ResponseWriter, path string, body map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	existing, ok := h.files[path]
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	sha, _ := body["sha"].(string)
	if sha != blobSHA(existing.content) {
		writeError(w, http.StatusConflict, fmt.Sprintf("%s does not match %s", path, sha))
		return
	}

	delete(h.files, path)
	message, _ := body["message"].(string)
	writeJSON(w, http.StatusOK, map[string]any{
		"content": nil,
		"commit":  h.commit(message),
	})
}
