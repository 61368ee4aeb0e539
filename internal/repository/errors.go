package repository

import "errors"

// ErrNotFound is returned by Get when no value is stored under the key.
//
// Callers above the repository treat this as "absent, use the default" and
// never need to know which backend produced it.
var ErrNotFound = errors.New("repository: not found")
