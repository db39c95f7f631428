package auctionerrors

import "errors"

// Not-found errors
var (
	ErrItemNotFound   = errors.New("item not found")
	ErrBidderNotFound = errors.New("bidder not found")
)

// Lifecycle errors
var (
	ErrAlreadySold = errors.New("item already sold")
	ErrNotSold     = errors.New("item is not sold")
	ErrNoOwnership = errors.New("no active ownership record for item")
)

// Rule violations
var (
	ErrBidTooLow         = errors.New("bid amount below minimum")
	ErrConsecutiveBid    = errors.New("consecutive bid by same bidder not allowed")
	ErrAuctionFull       = errors.New("maximum active bidders reached for item")
	ErrLeaderCannotExit  = errors.New("current leader cannot exit")
	ErrNoActiveBid       = errors.New("bidder has no active bid on item")
	ErrNoBids            = errors.New("no bids placed on item")
	ErrTooManyItems      = errors.New("bidder holds bids on too many items")
	ErrAdminRequired     = errors.New("operation requires admin privilege")
	ErrInvalidBidRequest = errors.New("invalid bid request")
)

// Funds and concurrency errors
var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrConflict          = errors.New("concurrent update conflict")
)
