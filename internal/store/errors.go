package store

import "errors"

// Failures surfaced by Store operations. Every operation validates before it
// mutates, so a returned error always means the Store is unchanged.
var (
	ErrClassNotFound            = errors.New("class not found")
	ErrTagAlreadyExists         = errors.New("tag already exists")
	ErrInvalidMovementDirection = errors.New("invalid movement direction")
	ErrInvalidAssignmentIndex   = errors.New("invalid assignment index")
)
