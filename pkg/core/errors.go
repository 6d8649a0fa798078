package core

import (
	"errors"
	"fmt"
)

// Error kinds. Match them with errors.Is.
var (
	ErrReadOnly      = errors.New("repository is in read-only mode")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("revision conflict")
	ErrTransport     = errors.New("transport error")
	ErrContentEmpty  = errors.New("content empty")
)

// RemoteError describes a failed call against a remote backend.
// Kind is one of the sentinel errors above.
type RemoteError struct {
	Op      string
	Path    string
	Status  int    // 0 when no response was received
	Message string // message reported by the host, if any
	Kind    error
	Err     error
}

func (e *RemoteError) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	msg += ": " + e.Kind.Error()
	if e.Status != 0 {
		msg += fmt.Sprintf(" (status %d)", e.Status)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *RemoteError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Status
	}
	return 0
}
