package centers

import "errors"

var (
	ErrCenterNotFound = errors.New("Blood center not found")
	ErrEmailTaken     = errors.New("Email already registered")
)
