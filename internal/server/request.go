package server

import "strings"

// firstLine isolates the request line from a raw read of the connection.
// Headers and any body that arrived in the same read are ignored.
func firstLine(raw string) string {
	if i := strings.IndexByte(raw, '\n'); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimSuffix(raw, "\r")
}

// parseRequestLine splits a request line into its method and target.
// Missing fields come back as empty strings, never an error; deciding what
// an empty target means is the caller's job, and target well-formedness is
// the sandbox's.
func parseRequestLine(line string) (method, target string) {
	fields := strings.Fields(line)
	if len(fields) > 0 {
		method = fields[0]
	}
	if len(fields) > 1 {
		target = fields[1]
	}
	return method, target
}
