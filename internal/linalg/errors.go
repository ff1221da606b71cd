package linalg

import "errors"

var (
	// ErrUnsupported marks a policy/size combination with no implementation.
	ErrUnsupported = errors.New("linalg: determinant computation using this method is not implemented yet")

	// ErrUnknownPolicy is returned for Policy values outside the enumeration
	// and for unrecognized policy names.
	ErrUnknownPolicy = errors.New("linalg: unknown determinant policy")
)
