package main

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/unrolled/render"
)

var ren = render.New()

// recoveryHandler is a handler that handles and logs panics
func recoveryHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				stack := make([]byte, 5012)
				stack = stack[:runtime.Stack(stack, false)]
				slog.Error("Panic while serving request",
					slog.Any("error", err),
					slog.String("path", req.URL.Path),
					slog.String("stack", string(stack)))
				ren.Text(w, http.StatusInternalServerError, "Internal server error")
			}
		}()

		next.ServeHTTP(w, req)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// logHandler is a middleware that logs one line per completed request
func logHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, req)
		slog.Info("Request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
			slog.Int("bytes", rec.bytes))
	})
}

// serveHandler answers every GET: file bytes for regular files, an index
// document for directories.
func serveHandler(root string, fsys FileSystem) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		raw := strings.TrimPrefix(req.URL.EscapedPath(), "/")
		tgt, fail := resolve(fsys, root, raw)
		if fail != failNone {
			respondFailure(w, fail)
			return
		}
		if tgt.isDir {
			serveDir(w, req, root, fsys, tgt.path)
			return
		}
		serveFile(w, fsys, tgt.path)
	})
}

// serveFile buffers the whole file and answers with its exact bytes. A
// read failure after a successful stat means the file exists but cannot
// be read, hence forbidden rather than not-found.
func serveFile(w http.ResponseWriter, fsys FileSystem, path string) {
	b, err := fsys.ReadFile(path)
	if err != nil {
		respondFailure(w, failForbidden)
		return
	}

	ctype := mime.TypeByExtension(filepath.Ext(path))
	if ctype == "" {
		ctype = "application/octet-stream"
	}
	w.Header().Set("Content-Type", ctype)
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func serveDir(w http.ResponseWriter, req *http.Request, root string, fsys FileSystem, dir string) {
	entries, err := listEntries(fsys, dir)
	if err != nil {
		respondFailure(w, failForbidden)
		return
	}

	if wantsJSON(req) {
		ren.JSON(w, http.StatusOK, listingDocument{
			Entries:    entries,
			Statistics: dirStatistics(fsys, dir, entries),
		})
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, renderListing(entries, dir != root))
}

// wantsJSON reports whether the client asked for the machine-readable
// listing instead of the HTML index.
func wantsJSON(req *http.Request) bool {
	for _, part := range strings.Split(req.Header.Get("Accept"), ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err == nil && mediaType == "application/json" {
			return true
		}
	}
	return false
}

// respondFailure is the only place a failure becomes an HTTP response.
// Bodies stay opaque: no filesystem detail is echoed back.
func respondFailure(w http.ResponseWriter, f failure) {
	switch f {
	case failBadRequest:
		ren.Text(w, http.StatusBadRequest, "Bad URL encoding")
	case failNotFound:
		ren.Text(w, http.StatusNotFound, "Not found")
	case failForbidden:
		ren.Text(w, http.StatusForbidden, "Forbidden")
	}
}
