package server

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/engbent/bounty/internal/urlpath"
)

var (
	// ErrForbidden means the canonical path escaped the root directory.
	ErrForbidden = errors.New("path escapes root")
	// ErrNotFound means some component of the path does not exist.
	ErrNotFound = errors.New("path does not exist")
)

// resolve maps a raw request target onto an absolute filesystem path inside
// root. root must already be canonical.
//
// The candidate is canonicalized before the containment check. The other
// order is the classic path-traversal hole: a ".." segment or a symlink
// checked lexically can point anywhere.
func resolve(root, target string) (string, error) {
	decoded := urlpath.Decode(target)
	if decoded == "" {
		// Unparseable requests have no target at all; treat like a
		// missing resource.
		return "", ErrNotFound
	}

	// "/" names the root itself; anything else loses exactly one leading
	// separator and becomes relative to the root.
	rel := strings.TrimPrefix(decoded, "/")
	candidate := filepath.Join(root, filepath.FromSlash(rel))

	resolved, err := filepath.EvalSymlinks(candidate)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("canonicalize %s: %w", candidate, err)
	}

	if resolved != root && !strings.HasPrefix(resolved, root+string(filepath.Separator)) {
		return "", ErrForbidden
	}
	return resolved, nil
}
