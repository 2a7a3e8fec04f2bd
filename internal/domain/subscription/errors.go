package subscription

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrSubscriptionConflict = errors.New("user already has an active subscription")
	ErrRenewCancelled       = errors.New("cannot renew a cancelled subscription")
	ErrAlreadyTrial         = errors.New("subscription is already a trial")
	ErrInvalidStatus        = errors.New("invalid subscription status")
)
