package server

import (
	"errors"
	"log"
	"net"
	"os"

	"github.com/fatih/color"
)

// readBufferSize bounds the single read taken from each connection. A
// request line longer than this parses truncated and will typically 404;
// known limitation, kept from the original behavior rather than looping
// until a full line arrives.
const readBufferSize = 1024

// handleConn services one connection to completion: one bounded read, one
// response. The caller closes the connection afterwards. No error leaves
// this function; a broken connection must never take down the listener.
func (s *Server) handleConn(conn net.Conn) {
	buf := make([]byte, readBufferSize)
	n, err := conn.Read(buf)
	if err != nil {
		return
	}

	method, target := parseRequestLine(firstLine(string(buf[:n])))
	log.Printf("%s %s", color.GreenString(method), target)

	// Browsers probe for this on every visit; answer before touching the
	// filesystem so the probe stays quiet regardless of what is on disk.
	if target == "/favicon.ico" {
		respond(conn, statusNotFound, "text/html", "Not Found")
		return
	}

	if method != "GET" {
		respond(conn, statusMethodNotAllowed, "text/html", "Method Not Allowed")
		return
	}

	resolved, err := resolve(s.root, target)
	if err != nil {
		if errors.Is(err, ErrForbidden) {
			log.Printf("forbidden: %s escapes %s", target, s.root)
			respond(conn, statusForbidden, "text/html", "Forbidden")
			return
		}
		respond(conn, statusNotFound, "text/html", "Not Found")
		return
	}
	log.Printf("resolved %s -> %s", target, resolved)

	info, err := os.Stat(resolved)
	if err != nil {
		respond(conn, statusNotFound, "text/html", "Not Found")
		return
	}

	switch {
	case info.IsDir():
		body, err := renderListing(resolved)
		if err != nil {
			// No partial listings: drop the connection without a
			// response rather than send a misleading page.
			log.Printf("listing %s: %v", resolved, err)
			return
		}
		respond(conn, statusOK, "text/html", body)
	case info.Mode().IsRegular():
		content, err := os.ReadFile(resolved)
		if err != nil {
			log.Printf("reading %s: %v", resolved, err)
			respond(conn, statusInternalServerError, "text/html", "Internal Server Error")
			return
		}
		_ = writeBinary(conn, statusOK, sniffContentType(content), content)
	default:
		// Sockets, devices and the like exist but are not servable.
		respond(conn, statusNotFound, "text/html", "Not Found")
	}
}
