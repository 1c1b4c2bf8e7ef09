package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching record exists.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned by stores when a uniqueness constraint rejects a write.
	ErrConflict = errors.New("record already exists")
	// ErrTokenInvalid covers any token verification failure: bad signature,
	// expiry, or malformed input.
	ErrTokenInvalid = errors.New("token invalid")
)
