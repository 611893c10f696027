// Package handler contains the echo handlers for the gateway's routes.
package handler

import (
	"errors"
	"path/filepath"
	"strings"
)

// errTraversal indicates a request path that escapes its serving root.
// It is reported to clients as a plain 404 so that traversal attempts
// cannot probe for file existence.
var errTraversal = errors.New("path escapes serving root")

// resolveUnder maps a URL subpath to a filesystem path under root. The
// resolved path must stay within root after normalizing ".." segments.
func resolveUnder(root, subpath string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(subpath))
	base := filepath.Clean(root)
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", errTraversal
	}
	return full, nil
}
