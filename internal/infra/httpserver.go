package infra

import (
	"context"
	"net/http"
	"time"
)

// headerTimeout caps how long a client may take to send its headers. It is
// deliberately short: the generous write timeout exists for the outbound
// model call, not for slow clients.
const headerTimeout = 5 * time.Second

// HTTPServer owns the listening socket. The write timeout must outlast a
// full background-removal round trip, since the handler holds the response
// open while the model works; Config defaults account for that.
type HTTPServer struct {
	srv *http.Server
}

// NewHTTPServer builds the server for the given handler using the configured
// port and timeouts.
func NewHTTPServer(cfg *Config, handler http.Handler) *HTTPServer {
	return &HTTPServer{
		srv: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.HTTPReadTimeout,
			ReadHeaderTimeout: headerTimeout,
			WriteTimeout:      cfg.HTTPWriteTimeout,
			IdleTimeout:       cfg.HTTPIdleTimeout,
		},
	}
}

// Addr returns the address the server listens on.
func (s *HTTPServer) Addr() string {
	return s.srv.Addr
}

// Start blocks serving requests until Shutdown is called or the listener
// fails.
func (s *HTTPServer) Start() error {
	return s.srv.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
