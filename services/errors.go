package services

import "errors"

// ErrNoAuth means no session identity was available and no trusted
// override was supplied. Never retried, surfaced to the caller as-is.
var ErrNoAuth = errors.New("no authenticated user")
