// Package apiref parses the path-shaped reference strings clients use to
// point at related records, e.g. "/api/challenges/3".
package apiref

import (
	"errors"
	"strconv"
	"strings"
)

var ErrNotAReference = errors.New("not a reference string for this resource")

// ParseID extracts the trailing integer id from a reference string of the
// form /api/<resource>/<id>. Resource is the plural resource name.
func ParseID(ref, resource string) (uint, error) {
	prefix := "/api/" + resource + "/"
	if !strings.HasPrefix(ref, prefix) {
		return 0, ErrNotAReference
	}

	rest := ref[len(prefix):]
	if rest == "" || strings.Contains(rest, "/") {
		return 0, ErrNotAReference
	}

	id, err := strconv.ParseUint(rest, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrNotAReference
	}
	return uint(id), nil
}
