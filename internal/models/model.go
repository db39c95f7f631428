package models

import (
	"time"

	"auction-engine/internal/money"
)

// Tier is the price class of an item; it drives the bid-increment schedule.
type Tier string

const (
	TierSapphire Tier = "Sapphire"
	TierGold     Tier = "Gold"
	TierEmerald  Tier = "Emerald"
	TierSilver   Tier = "Silver"
)

// ItemStatus is the auction lifecycle state of an item.
type ItemStatus string

const (
	StatusOpen ItemStatus = "open"
	StatusSold ItemStatus = "sold"
)

// Item represents an auctioned entity. Catalog fields (name, role, tier, base
// price) are owned by catalog management; bid state is mutated only by the
// auction engine.
type Item struct {
	ItemID        string       `json:"item_id"`
	Name          string       `json:"name"`
	Role          string       `json:"role"`
	Tier          Tier         `json:"tier"`
	BasePrice     money.Money  `json:"base_price"`
	Status        ItemStatus   `json:"status"`
	CurrentBid    *money.Money `json:"current_bid,omitempty"`
	CurrentBidder string       `json:"current_bidder,omitempty"`
}

// Bidder represents a participant account.
type Bidder struct {
	BidderID string `json:"bidder_id"`
	Name     string `json:"name"`
	TeamName string `json:"team_name"`
	IsAdmin  bool   `json:"is_admin"`
}

// Bid is one entry in an item's append-only bid log. Seq increases
// monotonically per item; Active marks the bidder's current standing offer.
type Bid struct {
	BidID     string      `json:"bid_id"`
	ItemID    string      `json:"item_id"`
	BidderID  string      `json:"bidder_id"`
	Amount    money.Money `json:"amount"`
	Seq       uint64      `json:"seq"`
	Active    bool        `json:"active"`
	CreatedAt time.Time   `json:"created_at"`
}

// Ownership records a completed sale. Release invalidates it rather than
// deleting it, keeping the audit trail intact.
type Ownership struct {
	ItemID     string      `json:"item_id"`
	BidderID   string      `json:"bidder_id"`
	Amount     money.Money `json:"amount"`
	WinningSeq uint64      `json:"winning_seq"`
	Active     bool        `json:"active"`
	CreatedAt  time.Time   `json:"created_at"`
}
