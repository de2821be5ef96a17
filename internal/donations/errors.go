package donations

import "errors"

var (
	ErrDonorNotFound    = errors.New("Donor not found")
	ErrDonationNotFound = errors.New("Donation record not found")
)
