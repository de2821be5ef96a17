package donors

import "errors"

var (
	ErrDonorNotFound = errors.New("Donor not found")
	ErrEmailTaken    = errors.New("Email already registered")
)
