// Package server implements a sandboxed directory server: a sequential TCP
// accept loop answering one HTTP request per connection with files and
// directory listings from a fixed root directory. Nothing outside the root
// is ever served.
package server

import (
	"fmt"
	"net"
	"path/filepath"

	"github.com/engbent/bounty/internal/config"
)

// Server owns the listener and the canonical root directory. The root is
// fixed for the server's lifetime and is the only state connections share.
type Server struct {
	root     string
	listener net.Listener
}

// New binds the configured address and canonicalizes the root directory.
// The root must exist; every per-request containment check compares
// against this canonical form.
func New(cfg config.Config) (*Server, error) {
	abs, err := filepath.Abs(cfg.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve root %s: %w", cfg.Root, err)
	}
	root, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("canonicalize root %s: %w", abs, err)
	}
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return &Server{root: root, listener: ln}, nil
}

// Addr reports the bound listen address.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Root reports the canonical root directory being served.
func (s *Server) Root() string { return s.root }

// Serve accepts connections strictly one at a time, servicing each to
// completion before accepting the next. There is no per-connection
// goroutine and no timeout: a slow client stalls everyone behind it. That
// trade keeps the server free of shared mutable state. Serve returns the
// accept error once the listener is closed.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return err
		}
		s.handleConn(conn)
		conn.Close()
	}
}

// Close stops the listener; a connection already being handled finishes on
// its own.
func (s *Server) Close() error { return s.listener.Close() }
