package server

import (
	"context"
	"net/http"
)

// httpServer is the narrow slice of *http.Server the lifecycle code
// touches. Tests substitute a stub so Run can be exercised without
// binding a socket.
type httpServer interface {
	ListenAndServe() error
	Shutdown(context.Context) error
	Addr() string
	Handler() http.Handler
}

// stdHTTPServer adapts *http.Server to the httpServer seam.
type stdHTTPServer struct {
	srv *http.Server
}

func (s stdHTTPServer) ListenAndServe() error              { return s.srv.ListenAndServe() }
func (s stdHTTPServer) Shutdown(ctx context.Context) error { return s.srv.Shutdown(ctx) }
func (s stdHTTPServer) Addr() string                       { return s.srv.Addr }
func (s stdHTTPServer) Handler() http.Handler              { return s.srv.Handler }
