package mapstore

import "errors"

// ErrNotFound is returned by lookups for an id the store does not hold.
var ErrNotFound = errors.New("mapstore: map not found")
