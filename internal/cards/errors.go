package cards

import "errors"

var (
	ErrDonorNotFound = errors.New("Donor not found")
	ErrCardNotFound  = errors.New("Donor ID card not found")
)
