package payments

import "errors"

// Domain-level error conditions. The chain gateway maps structured contract
// reverts onto these sentinels at its boundary, so callers classify with
// errors.Is instead of inspecting message text.
var (
	// ErrRailNotFound: the rail id does not exist under the configured
	// token.
	ErrRailNotFound = errors.New("rail not found")

	// ErrAlreadySettled: the rail is inactive or another actor already
	// advanced its settlement. A benign race, not a defect.
	ErrAlreadySettled = errors.New("rail inactive or already settled")

	// ErrInsufficientFunds: a local pre-check found the available or
	// wallet balance below the requested amount. Nothing was submitted.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
