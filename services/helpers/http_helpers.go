// Package helpers holds the handler-layer plumbing shared by every
// service: bind-error responses, the sentinel-to-HTTP mapping, and success
// logging.
package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-platform/internal/auctionerrors"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures.
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrInvalidInput):
		return http.StatusBadRequest, "invalid request details"
	case errors.Is(err, auctionerrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, auctionerrors.ErrInvalidToken):
		return http.StatusUnauthorized, "authentication required"
	case errors.Is(err, auctionerrors.ErrForbidden):
		return http.StatusForbidden, "not permitted"
	case errors.Is(err, auctionerrors.ErrUnpaidCommission):
		return http.StatusForbidden, "unpaid commission outstanding"
	case errors.Is(err, auctionerrors.ErrProofExceedsUnpaid):
		return http.StatusForbidden, "amount exceeds unpaid commission balance"
	case errors.Is(err, auctionerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return http.StatusNotFound, "auction not found"
	case errors.Is(err, auctionerrors.ErrProofNotFound):
		return http.StatusNotFound, "payment proof not found"
	case errors.Is(err, auctionerrors.ErrEmailTaken):
		return http.StatusConflict, "email already registered"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount too low"
	case errors.Is(err, auctionerrors.ErrAuctionNotStarted):
		return http.StatusConflict, "auction has not started"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return http.StatusConflict, "auction is closed"
	case errors.Is(err, auctionerrors.ErrAuctionActive):
		return http.StatusConflict, "auction is still active"
	case errors.Is(err, auctionerrors.ErrDuplicateActiveAuction):
		return http.StatusConflict, "you already have one active auction"
	case errors.Is(err, auctionerrors.ErrOTPInvalid):
		return http.StatusBadRequest, "otp invalid or expired"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusOK, "no bids found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// RespondError maps err, sends the JSON error, and logs it.
func RespondError(c *gin.Context, handlerName string, err error) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
	utils.Warn(handlerName+": "+message, map[string]any{"error": err.Error()})
}

// LogSuccess is a small helper to standardize logging of successful operations.
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}

// AllowedImageTypes are the upload content types the platform accepts.
var AllowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}
