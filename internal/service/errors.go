package service

import "errors"

// Business-rule errors surfaced to API callers with their message intact.
// Anything else coming out of a service is an infrastructure failure and is
// reported generically.
var (
	ErrEligibilityBlocked = errors.New("you must resolve your pendencies before renting new equipment")
	ErrUnitUnavailable    = errors.New("sorry, this equipment is already reserved")
	ErrInvalidCode        = errors.New("invalid rental code")
	ErrWindowExpired      = errors.New("this rental was cancelled because the pickup time limit was exceeded")
	ErrInvalidTransition  = errors.New("this action is not allowed in the rental's current state")
	ErrInvalidDuration    = errors.New("duration must be a positive number of minutes")

	ErrCustomerExists     = errors.New("this customer already exists, check the email and cpf you entered")
	ErrSupplierExists     = errors.New("this supplier already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPendencyResolved   = errors.New("this pendency is already resolved")
)

// IsBusinessError reports whether err is one of the user-facing rejections
// above, as opposed to an infrastructure failure.
func IsBusinessError(err error) bool {
	for _, target := range []error{
		ErrEligibilityBlocked,
		ErrUnitUnavailable,
		ErrInvalidCode,
		ErrWindowExpired,
		ErrInvalidTransition,
		ErrInvalidDuration,
		ErrCustomerExists,
		ErrSupplierExists,
		ErrInvalidCredentials,
		ErrPendencyResolved,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
