// Package github stores notes as files of a GitHub repository through the
// REST contents API.
//
// Every update or delete must carry the blob SHA of the version it
// replaces. The client reads that SHA immediately before each mutating
// call and never caches it; when another writer gets in between, the
// host rejects the call and the error matches core.ErrConflict.
package github
