package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrUnauthorized        = errors.New("unauthorized")

	// request error
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrInvalidSignature = errors.New("Invalid signature")

	// listing validation
	ErrInvalidTicketCount = errors.New("max tickets must be more or equal 2")
	ErrInvalidPrice       = errors.New("ticket price must be above zero")
	ErrDurationTooShort   = errors.New("duration must be more or equal min duration")
	ErrDurationTooLong    = errors.New("duration must be less or equal max duration")

	// purchase
	ErrListingNotExists          = errors.New("listing does not exist")
	ErrListingExpired            = errors.New("listing has already expired")
	ErrBuyAmountTooLow           = errors.New("amount must be above zero")
	ErrMaxTicketsBoughtByAddress = errors.New("max tickets bought by this address")
	ErrAllTicketsBought          = errors.New("all tickets bought")
	ErrInvalidSwapDescription    = errors.New("invalid swap description")
	ErrInvalidMsgValue           = errors.New("invalid payment amount")

	// settlement and reclaim
	ErrListingNotFulfilled     = errors.New("listing is not fulfilled")
	ErrListingAlreadyFulfilled = errors.New("listing has already been fulfilled")
	ErrListingNotExpired       = errors.New("listing has not expired yet")
	ErrCallerNotWinner         = errors.New("caller is not the winner")
	ErrCallerNotOwner          = errors.New("caller is not the owner")
	ErrItemAlreadyClaimed      = errors.New("item has already been claimed")
	ErrTokensAlreadyClaimed    = errors.New("tokens have already been claimed")
	ErrNothingToReclaim        = errors.New("nothing to reclaim")

	// collaborators
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrItemNotEscrowed     = errors.New("item is not held by caller")

	// admin ceilings
	ErrFeeTooHigh       = errors.New("fee rate exceeds ceiling")
	ErrCapTooHigh       = errors.New("ticket cap exceeds 100%")
	ErrDurationsInvalid = errors.New("min duration exceeds max duration")
)

var preconditionErrors = []error{
	ErrInvalidTicketCount,
	ErrInvalidPrice,
	ErrDurationTooShort,
	ErrDurationTooLong,
	ErrListingExpired,
	ErrBuyAmountTooLow,
	ErrMaxTicketsBoughtByAddress,
	ErrAllTicketsBought,
	ErrInvalidSwapDescription,
	ErrInvalidMsgValue,
	ErrListingNotFulfilled,
	ErrListingAlreadyFulfilled,
	ErrListingNotExpired,
	ErrCallerNotWinner,
	ErrCallerNotOwner,
	ErrItemAlreadyClaimed,
	ErrTokensAlreadyClaimed,
	ErrNothingToReclaim,
	ErrInsufficientBalance,
	ErrItemNotEscrowed,
	ErrFeeTooHigh,
	ErrCapTooHigh,
	ErrDurationsInvalid,
}

// IsPreconditionError reports whether err is a rejected-before-state-change
// validation or phase error, as opposed to an internal failure.
func IsPreconditionError(err error) bool {
	for _, e := range preconditionErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
