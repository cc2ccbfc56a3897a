package service

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrOTPNotFound         = errors.New("no otp request found")
	ErrOTPExpired          = errors.New("otp has expired")
	ErrOTPMismatch         = errors.New("invalid otp")
	ErrEmailDeliveryFailed = errors.New("email delivery failed")

	ErrJobNotFound         = errors.New("job not found")
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrReviewNotFound      = errors.New("review not found")

	ErrSessionNotFound = errors.New("refresh session not found")
	ErrSessionExpired  = errors.New("refresh session expired")
)
