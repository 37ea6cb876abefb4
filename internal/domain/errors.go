package domain

import "errors"

var (
	// ErrInvalidItem signals an item that fails construction validation.
	ErrInvalidItem = errors.New("invalid item")
	// ErrInvalidQuery signals a malformed search request.
	ErrInvalidQuery = errors.New("invalid query")
)
