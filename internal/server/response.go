package server

import (
	"fmt"
	"io"

	"github.com/h2non/filetype"
)

// The complete set of status lines this server can emit.
const (
	statusOK                  = "200 OK"
	statusForbidden           = "403 Forbidden"
	statusNotFound            = "404 Not Found"
	statusMethodNotAllowed    = "405 Method Not Allowed"
	statusInternalServerError = "500 Internal Server Error"
)

const defaultContentType = "application/octet-stream"

// writeText emits a full textual response: status line, Content-Type,
// Content-Length, blank line, body. No other headers are sent.
func writeText(w io.Writer, status, contentType, body string) error {
	return writeBinary(w, status, contentType, []byte(body))
}

// writeBinary is the byte-body variant of writeText. Content-Length is the
// exact byte length of body; the response is fully assembled in the header
// string plus body before anything hits the wire.
func writeBinary(w io.Writer, status, contentType string, body []byte) error {
	header := fmt.Sprintf("HTTP/1.1 %s\r\nContent-Type: %s\r\nContent-Length: %d\r\n\r\n",
		status, contentType, len(body))
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	_, err := w.Write(body)
	return err
}

// respond sends a textual response and swallows write failures: a broken
// connection ends its own handling and concerns nobody else.
func respond(w io.Writer, status, contentType, body string) {
	_ = writeText(w, status, contentType, body)
}

// sniffContentType inspects the leading bytes of body for a known file
// signature. Content with no recognizable signature is served as a generic
// binary type; the filename extension is never consulted.
func sniffContentType(body []byte) string {
	kind, err := filetype.Match(body)
	if err != nil || kind == filetype.Unknown {
		return defaultContentType
	}
	return kind.MIME.Value
}
