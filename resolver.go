package main

import (
	"net/url"
	"path/filepath"
	"strings"
)

// A failure is one of the three terminal request outcomes. Every failure
// maps to exactly one HTTP status; the mapping happens once, in
// respondFailure.
type failure int

const (
	failNone failure = iota
	failBadRequest
	failNotFound
	failForbidden
)

// target is a resolved filesystem path plus its classification.
type target struct {
	path  string
	isDir bool
}

// resolve turns a raw, still percent-encoded URL path segment into a
// filesystem target under root. The empty segment is the root itself.
//
// Decoding failure is failBadRequest. The joined path is cleaned and must
// stay at or under root; one that climbs out is reported as absent rather
// than forbidden, so the response does not confirm anything exists outside
// the served tree.
func resolve(fsys FileSystem, root, rawPath string) (target, failure) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return target{}, failBadRequest
	}

	joined := filepath.Join(root, filepath.FromSlash(decoded))
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return target{}, failNotFound
	}

	info, err := fsys.Stat(joined)
	if err != nil {
		return target{}, failNotFound
	}
	return target{path: joined, isDir: info.IsDir()}, failNone
}
