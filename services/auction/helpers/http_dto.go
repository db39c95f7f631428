package helpers

// Request/Response DTOs
type PlaceBidRequest struct {
	BidderID string `json:"bidder_id" binding:"required"`
	// Amount is a decimal string; empty means "bid the policy minimum".
	Amount string `json:"amount"`
}

type ExitBidRequest struct {
	BidderID string `json:"bidder_id"`
	AsAdmin  bool   `json:"as_admin"`
}

type BidStateResponse struct {
	ItemID   string `json:"item_id"`
	HighBid  string `json:"high_bid,omitempty"`
	LeaderID string `json:"leader_id,omitempty"`
}

type SettlementResponse struct {
	ItemID   string `json:"item_id"`
	WinnerID string `json:"winner_id"`
	Amount   string `json:"amount"`
}

type RefundResponse struct {
	ItemID   string `json:"item_id"`
	BidderID string `json:"bidder_id"`
	Amount   string `json:"amount"`
}
