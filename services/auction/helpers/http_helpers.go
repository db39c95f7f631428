package helpers

import (
	"errors"
	"fmt"
	"net/http"

	"auction-engine/internal/auctionerrors"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// MapErrorToHTTP maps engine errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, auctionerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, auctionerrors.ErrBidderNotFound):
		return http.StatusNotFound, "bidder not found"
	case errors.Is(err, auctionerrors.ErrNoOwnership):
		return http.StatusNotFound, "no active sale for item"
	case errors.Is(err, auctionerrors.ErrInvalidBidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, auctionerrors.ErrAlreadySold):
		return http.StatusConflict, "item already sold"
	case errors.Is(err, auctionerrors.ErrNotSold):
		return http.StatusConflict, "item is not sold"
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return http.StatusConflict, "bid amount below minimum"
	case errors.Is(err, auctionerrors.ErrConsecutiveBid):
		return http.StatusConflict, "consecutive bid not allowed"
	case errors.Is(err, auctionerrors.ErrAuctionFull):
		return http.StatusConflict, "auction is full"
	case errors.Is(err, auctionerrors.ErrLeaderCannotExit):
		return http.StatusConflict, "current leader cannot exit"
	case errors.Is(err, auctionerrors.ErrNoActiveBid):
		return http.StatusConflict, "no active bid for bidder"
	case errors.Is(err, auctionerrors.ErrNoBids):
		return http.StatusConflict, "no bids placed on item"
	case errors.Is(err, auctionerrors.ErrTooManyItems):
		return http.StatusConflict, "bidder holds bids on too many items"
	case errors.Is(err, auctionerrors.ErrAdminRequired):
		return http.StatusForbidden, "admin privilege required"
	case errors.Is(err, auctionerrors.ErrInsufficientFunds):
		return http.StatusPaymentRequired, "insufficient funds"
	case errors.Is(err, auctionerrors.ErrConflict):
		return http.StatusServiceUnavailable, "item busy, retry"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
