package auctionerrors

import "errors"

// Repository-level errors
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrAuctionNotFound = errors.New("auction not found")
	ErrProofNotFound   = errors.New("payment proof not found")
	ErrNoBids          = errors.New("no bids found for auction")
)

// Business logic errors
var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrBidTooLow              = errors.New("bid amount too low")
	ErrAuctionNotStarted      = errors.New("auction has not started")
	ErrAuctionClosed          = errors.New("auction is closed")
	ErrAuctionActive          = errors.New("auction is still active")
	ErrDuplicateActiveAuction = errors.New("auctioneer already has an active auction")
	ErrUnpaidCommission       = errors.New("unpaid commission outstanding")
	ErrProofExceedsUnpaid     = errors.New("proof amount exceeds unpaid commission")
)

// Identity errors
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("session token invalid")
	ErrForbidden          = errors.New("role not permitted")
	ErrOTPInvalid         = errors.New("otp invalid or expired")
)
