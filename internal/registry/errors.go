package registry

import "errors"

// Domain-specific errors for the registry package.
var (
	ErrGroupNotFound = errors.New("group does not exist")
	ErrEmptyName     = errors.New("group name is empty")
	ErrEmptyEmail    = errors.New("email is empty")
)
