package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

// service wires the request pipeline for a single served root. Only GET
// is registered; mux answers the rest with its method-not-allowed
// default.
func service(root string, fsys FileSystem) http.Handler {
	const pathPrefix = "/"

	r := mux.NewRouter()
	r.PathPrefix(pathPrefix).Handler(serveHandler(root, fsys)).Methods(http.MethodGet)

	return recoveryHandler(logHandler(r))
}
