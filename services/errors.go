package services

import "errors"

// Business-rule rejections. None of them mutate state; the caller may retry.
var (
	ErrInsufficientPoints     = errors.New("not enough points")
	ErrSelfReferral           = errors.New("cannot use your own referral code")
	ErrReferralAlreadyApplied = errors.New("a referral code was already applied")
	ErrAlreadyReferred        = errors.New("this friend was already referred")
	ErrRewardNotFound         = errors.New("reward not found")
	ErrCartEmpty              = errors.New("cart is empty")
	ErrInvalidPhone           = errors.New("please enter a valid phone number")
	ErrInvalidTimeSlot        = errors.New("please select an available time slot")
	ErrInvalidGuests          = errors.New("please select number of guests")
	ErrPastDate               = errors.New("reservation date cannot be in the past")
)
