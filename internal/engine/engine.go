package engine

import (
	"errors"
	"fmt"
	"time"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/config"
	"auction-engine/internal/escrow"
	"auction-engine/internal/increment"
	model "auction-engine/internal/models"
	"auction-engine/internal/money"
	"auction-engine/internal/repository"
	"auction-engine/utils"

	"github.com/avast/retry-go"
	"github.com/puzpuzpuz/xsync/v2"
)

// BidOutcome is the public item state returned after a successful bid or exit.
type BidOutcome struct {
	ItemID   string       `json:"item_id"`
	HighBid  *money.Money `json:"high_bid,omitempty"`
	LeaderID string       `json:"leader_id,omitempty"`
}

// Settlement reports a completed sale.
type Settlement struct {
	ItemID   string      `json:"item_id"`
	WinnerID string      `json:"winner_id"`
	Amount   money.Money `json:"amount"`
}

// Refund reports a reversed sale.
type Refund struct {
	ItemID   string      `json:"item_id"`
	BidderID string      `json:"bidder_id"`
	Amount   money.Money `json:"amount"`
}

// AuctionState is a read-only snapshot of one item's auction.
type AuctionState struct {
	ItemID        string           `json:"item_id"`
	Name          string           `json:"name"`
	Tier          model.Tier       `json:"tier"`
	Status        model.ItemStatus `json:"status"`
	BasePrice     money.Money      `json:"base_price"`
	HighBid       *money.Money     `json:"high_bid,omitempty"`
	LeaderID      string           `json:"leader_id,omitempty"`
	NextMinimum   money.Money      `json:"next_minimum"`
	ActiveBidders int              `json:"active_bidders"`
}

// BidderDetails aggregates a bidder's escrow position, holdings and bids.
type BidderDetails struct {
	Bidder     model.Bidder      `json:"bidder"`
	Purse      escrow.PurseState `json:"purse"`
	Holdings   []model.Ownership `json:"holdings"`
	ActiveBids []model.Bid       `json:"active_bids"`
	PastBids   []model.Bid       `json:"past_bids"`
}

// AuctionEngine is the per-item state machine every mutating operation passes
// through. All read-then-write sequences on one item run under that item's
// lock; locks are never nested across items, so cross-item operations cannot
// deadlock.
type AuctionEngine struct {
	repo   repository.AuctionDB
	ledger *escrow.Ledger
	policy increment.Policy
	rules  config.Rules
	locks  *xsync.MapOf[string, chan struct{}]
}

// NewAuctionEngine creates an engine enforcing the given rule set.
func NewAuctionEngine(repo repository.AuctionDB, ledger *escrow.Ledger, rules config.Rules) *AuctionEngine {
	return &AuctionEngine{
		repo:   repo,
		ledger: ledger,
		policy: increment.Policy{
			Large:     money.FromInt64(rules.LargeIncrement),
			Small:     money.FromInt64(rules.SmallIncrement),
			Threshold: money.FromInt64(rules.SilverThreshold),
		},
		rules: rules,
		locks: xsync.NewMapOf[chan struct{}](),
	}
}

// withItem serializes fn against all other operations on the same item. Lock
// acquisition waits at most LockTimeout; a timed-out acquisition surfaces as
// ErrConflict and is retried a bounded number of times before reaching the
// caller.
func (e *AuctionEngine) withItem(itemID string, fn func() error) error {
	return retry.Do(
		func() error {
			lock, _ := e.locks.LoadOrCompute(itemID, func() chan struct{} {
				return make(chan struct{}, 1)
			})
			select {
			case lock <- struct{}{}:
			case <-time.After(e.rules.LockTimeout):
				return fmt.Errorf("engine: item %s is busy: %w", itemID, auctionerrors.ErrConflict)
			}
			defer func() { <-lock }()
			return fn()
		},
		retry.RetryIf(func(err error) bool { return errors.Is(err, auctionerrors.ErrConflict) }),
		retry.Attempts(e.rules.ConflictRetries),
		retry.Delay(10*time.Millisecond),
		retry.LastErrorOnly(true),
	)
}

// PlaceBid validates and records a bid. A nil amount resolves to the
// increment-policy minimum; in auto-increment mode caller amounts are ignored
// and the minimum is always used. All preconditions are checked before any
// state changes.
func (e *AuctionEngine) PlaceBid(itemID, bidderID string, amount *money.Money) (BidOutcome, error) {
	if itemID == "" || bidderID == "" {
		return BidOutcome{}, fmt.Errorf("engine: %w - missing itemID or bidderID", auctionerrors.ErrInvalidBidRequest)
	}

	var out BidOutcome
	err := e.withItem(itemID, func() error {
		item, err := e.repo.GetItem(itemID)
		if err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}
		if item.Status != model.StatusOpen {
			return fmt.Errorf("engine: place bid on item %s: %w", itemID, auctionerrors.ErrAlreadySold)
		}
		if _, err := e.repo.GetBidder(bidderID); err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}

		active, err := e.repo.ActiveBids(itemID)
		if err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}
		if countOtherBidders(active, bidderID) >= e.rules.MaxActiveBidders {
			return fmt.Errorf("engine: item %s: %w", itemID, auctionerrors.ErrAuctionFull)
		}

		minimum := e.policy.NextMinimumBid(item.Tier, item.BasePrice, item.CurrentBid)
		resolved := minimum
		if !e.rules.AutoIncrement && amount != nil {
			if amount.LessThan(minimum) {
				return fmt.Errorf("engine: bid %s on item %s is below minimum %s: %w",
					amount, itemID, minimum, auctionerrors.ErrBidTooLow)
			}
			resolved = *amount
		}

		if item.CurrentBidder == bidderID {
			return fmt.Errorf("engine: bidder %s already leads item %s: %w",
				bidderID, itemID, auctionerrors.ErrConsecutiveBid)
		}

		if e.ledger.LockedOn(bidderID, itemID).IsZero() &&
			e.ledger.LockCount(bidderID) >= e.rules.MaxItemsPerBidder {
			return fmt.Errorf("engine: bidder %s: %w", bidderID, auctionerrors.ErrTooManyItems)
		}

		if err := e.ledger.Lock(bidderID, itemID, resolved); err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}

		// A bidder's new bid replaces their prior standing offer.
		if err := e.repo.DeactivateBidderBids(itemID, bidderID); err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}
		bid := model.Bid{
			BidID:     utils.GenerateID(),
			ItemID:    itemID,
			BidderID:  bidderID,
			Amount:    resolved,
			Active:    true,
			CreatedAt: time.Now().UTC(),
		}
		if _, err := e.repo.AppendBid(bid); err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}
		if err := e.repo.SetItemBidState(itemID, &resolved, bidderID); err != nil {
			return fmt.Errorf("engine: place bid: %w", err)
		}

		out = BidOutcome{ItemID: itemID, HighBid: &resolved, LeaderID: bidderID}
		return nil
	})
	if err != nil {
		return BidOutcome{}, err
	}
	return out, nil
}

// ExitBid withdraws a bidder's standing offer and refunds their escrow. The
// current leader can never exit. With asAdmin set and an empty bidderID the
// second-highest active bidder is force-exited, freeing a slot when the
// active-bidder cap is reached.
func (e *AuctionEngine) ExitBid(itemID, bidderID string, asAdmin bool) (BidOutcome, error) {
	if itemID == "" {
		return BidOutcome{}, fmt.Errorf("engine: %w - missing itemID", auctionerrors.ErrInvalidBidRequest)
	}
	if bidderID == "" && !asAdmin {
		return BidOutcome{}, fmt.Errorf("engine: force-exit on item %s: %w", itemID, auctionerrors.ErrAdminRequired)
	}

	var out BidOutcome
	err := e.withItem(itemID, func() error {
		item, err := e.repo.GetItem(itemID)
		if err != nil {
			return fmt.Errorf("engine: exit bid: %w", err)
		}
		if item.Status != model.StatusOpen {
			return fmt.Errorf("engine: exit bid on item %s: %w", itemID, auctionerrors.ErrAlreadySold)
		}

		active, err := e.repo.ActiveBids(itemID)
		if err != nil {
			return fmt.Errorf("engine: exit bid: %w", err)
		}

		target := bidderID
		if asAdmin && target == "" {
			target = secondBidder(active, item.CurrentBidder)
			if target == "" {
				return fmt.Errorf("engine: item %s has no second bidder: %w", itemID, auctionerrors.ErrNoActiveBid)
			}
		}

		if _, err := e.repo.GetBidder(target); err != nil {
			return fmt.Errorf("engine: exit bid: %w", err)
		}
		if !hasActiveBid(active, target) {
			return fmt.Errorf("engine: bidder %s on item %s: %w", target, itemID, auctionerrors.ErrNoActiveBid)
		}
		if item.CurrentBidder == target {
			return fmt.Errorf("engine: bidder %s leads item %s: %w", target, itemID, auctionerrors.ErrLeaderCannotExit)
		}

		if err := e.repo.DeactivateBidderBids(itemID, target); err != nil {
			return fmt.Errorf("engine: exit bid: %w", err)
		}
		e.ledger.Unlock(target, itemID)

		remaining := removeBidder(active, target)
		if len(remaining) == 0 {
			if err := e.repo.SetItemBidState(itemID, nil, ""); err != nil {
				return fmt.Errorf("engine: exit bid: %w", err)
			}
			out = BidOutcome{ItemID: itemID}
			return nil
		}
		top := highestBid(remaining)
		if err := e.repo.SetItemBidState(itemID, &top.Amount, top.BidderID); err != nil {
			return fmt.Errorf("engine: exit bid: %w", err)
		}
		out = BidOutcome{ItemID: itemID, HighBid: &top.Amount, LeaderID: top.BidderID}
		return nil
	})
	if err != nil {
		return BidOutcome{}, err
	}
	return out, nil
}

// Settle marks the item permanently sold to the current leader: the winning
// amount is transferred out of the leader's escrow, every other active bidder
// is refunded, and an ownership record is created. The whole effect is
// applied under the item lock with all preconditions verified up front.
func (e *AuctionEngine) Settle(itemID string) (Settlement, error) {
	if itemID == "" {
		return Settlement{}, fmt.Errorf("engine: %w - missing itemID", auctionerrors.ErrInvalidBidRequest)
	}

	var out Settlement
	err := e.withItem(itemID, func() error {
		item, err := e.repo.GetItem(itemID)
		if err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}
		if item.Status != model.StatusOpen {
			return fmt.Errorf("engine: settle item %s: %w", itemID, auctionerrors.ErrAlreadySold)
		}
		if item.CurrentBid == nil || item.CurrentBidder == "" {
			return fmt.Errorf("engine: settle item %s: %w", itemID, auctionerrors.ErrNoBids)
		}

		winner := item.CurrentBidder
		amount := *item.CurrentBid

		active, err := e.repo.ActiveBids(itemID)
		if err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}

		// Purse state can have changed since the bid was accepted, so the
		// winner's coverage is verified again before any transfer.
		state, err := e.ledger.State(winner)
		if err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}
		if state.Available.Add(e.ledger.LockedOn(winner, itemID)).LessThan(amount) {
			return fmt.Errorf("engine: settle item %s for %s: %w",
				itemID, winner, auctionerrors.ErrInsufficientFunds)
		}

		if err := e.ledger.Transfer(winner, itemID, amount); err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}
		for _, b := range active {
			if b.BidderID != winner {
				e.ledger.Unlock(b.BidderID, itemID)
			}
		}

		var winningSeq uint64
		for _, b := range active {
			if b.BidderID == winner && b.Seq > winningSeq {
				winningSeq = b.Seq
			}
		}

		if err := e.repo.DeactivateAllBids(itemID); err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}
		own := model.Ownership{
			ItemID:     itemID,
			BidderID:   winner,
			Amount:     amount,
			WinningSeq: winningSeq,
			Active:     true,
			CreatedAt:  time.Now().UTC(),
		}
		if err := e.repo.RecordOwnership(own); err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}
		if err := e.repo.SetItemStatus(itemID, model.StatusSold); err != nil {
			return fmt.Errorf("engine: settle: %w", err)
		}

		out = Settlement{ItemID: itemID, WinnerID: winner, Amount: amount}
		return nil
	})
	if err != nil {
		return Settlement{}, err
	}
	return out, nil
}

// Release reverses a completed sale as a compensating transaction: the buyer
// is credited the recorded winning amount, the ownership record is
// invalidated, and the item reopens with its bid history purged.
func (e *AuctionEngine) Release(itemID string) (Refund, error) {
	if itemID == "" {
		return Refund{}, fmt.Errorf("engine: %w - missing itemID", auctionerrors.ErrInvalidBidRequest)
	}

	var out Refund
	err := e.withItem(itemID, func() error {
		item, err := e.repo.GetItem(itemID)
		if err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}
		if item.Status != model.StatusSold {
			return fmt.Errorf("engine: release item %s: %w", itemID, auctionerrors.ErrNotSold)
		}
		own, err := e.repo.ActiveOwnership(itemID)
		if err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}

		if err := e.ledger.Credit(own.BidderID, own.Amount); err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}
		if err := e.repo.InvalidateOwnership(itemID); err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}
		if err := e.repo.PurgeBids(itemID); err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}
		if err := e.repo.SetItemBidState(itemID, nil, ""); err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}
		if err := e.repo.SetItemStatus(itemID, model.StatusOpen); err != nil {
			return fmt.Errorf("engine: release: %w", err)
		}

		out = Refund{ItemID: itemID, BidderID: own.BidderID, Amount: own.Amount}
		return nil
	})
	if err != nil {
		return Refund{}, err
	}
	return out, nil
}

// GetBidHistory returns the item's full bid log, newest first.
func (e *AuctionEngine) GetBidHistory(itemID string) ([]model.Bid, error) {
	if itemID == "" {
		return nil, fmt.Errorf("engine: %w - missing itemID", auctionerrors.ErrInvalidBidRequest)
	}
	bids, err := e.repo.BidsByItem(itemID)
	if err != nil {
		return nil, fmt.Errorf("engine: bid history: %w", err)
	}
	return bids, nil
}

// GetAuctionState returns a snapshot of the item's auction.
func (e *AuctionEngine) GetAuctionState(itemID string) (AuctionState, error) {
	if itemID == "" {
		return AuctionState{}, fmt.Errorf("engine: %w - missing itemID", auctionerrors.ErrInvalidBidRequest)
	}
	item, err := e.repo.GetItem(itemID)
	if err != nil {
		return AuctionState{}, fmt.Errorf("engine: auction state: %w", err)
	}
	active, err := e.repo.ActiveBids(itemID)
	if err != nil {
		return AuctionState{}, fmt.Errorf("engine: auction state: %w", err)
	}
	return AuctionState{
		ItemID:        item.ItemID,
		Name:          item.Name,
		Tier:          item.Tier,
		Status:        item.Status,
		BasePrice:     item.BasePrice,
		HighBid:       item.CurrentBid,
		LeaderID:      item.CurrentBidder,
		NextMinimum:   e.policy.NextMinimumBid(item.Tier, item.BasePrice, item.CurrentBid),
		ActiveBidders: countOtherBidders(active, ""),
	}, nil
}

// GetPurseState returns the bidder's available and locked funds.
func (e *AuctionEngine) GetPurseState(bidderID string) (escrow.PurseState, error) {
	if bidderID == "" {
		return escrow.PurseState{}, fmt.Errorf("engine: %w - missing bidderID", auctionerrors.ErrInvalidBidRequest)
	}
	state, err := e.ledger.State(bidderID)
	if err != nil {
		return escrow.PurseState{}, fmt.Errorf("engine: purse state: %w", err)
	}
	return state, nil
}

// GetBidderDetails returns the bidder's purse, holdings and bid activity.
func (e *AuctionEngine) GetBidderDetails(bidderID string) (BidderDetails, error) {
	if bidderID == "" {
		return BidderDetails{}, fmt.Errorf("engine: %w - missing bidderID", auctionerrors.ErrInvalidBidRequest)
	}
	bidder, err := e.repo.GetBidder(bidderID)
	if err != nil {
		return BidderDetails{}, fmt.Errorf("engine: bidder details: %w", err)
	}
	purse, err := e.ledger.State(bidderID)
	if err != nil {
		return BidderDetails{}, fmt.Errorf("engine: bidder details: %w", err)
	}
	holdings, err := e.repo.OwnershipsByBidder(bidderID)
	if err != nil {
		return BidderDetails{}, fmt.Errorf("engine: bidder details: %w", err)
	}
	bids, err := e.repo.BidsByBidder(bidderID)
	if err != nil {
		return BidderDetails{}, fmt.Errorf("engine: bidder details: %w", err)
	}

	details := BidderDetails{
		Bidder:     bidder,
		Purse:      purse,
		Holdings:   holdings,
		ActiveBids: []model.Bid{},
		PastBids:   []model.Bid{},
	}
	for _, b := range bids {
		if b.Active {
			details.ActiveBids = append(details.ActiveBids, b)
		} else {
			details.PastBids = append(details.PastBids, b)
		}
	}
	return details, nil
}

// countOtherBidders counts distinct bidders with an active bid, excluding the
// given one. An empty exclude counts all distinct active bidders.
func countOtherBidders(bids []model.Bid, exclude string) int {
	seen := make(map[string]struct{}, len(bids))
	for _, b := range bids {
		if b.BidderID != exclude {
			seen[b.BidderID] = struct{}{}
		}
	}
	return len(seen)
}

func hasActiveBid(bids []model.Bid, bidderID string) bool {
	for _, b := range bids {
		if b.BidderID == bidderID {
			return true
		}
	}
	return false
}

func removeBidder(bids []model.Bid, bidderID string) []model.Bid {
	out := make([]model.Bid, 0, len(bids))
	for _, b := range bids {
		if b.BidderID != bidderID {
			out = append(out, b)
		}
	}
	return out
}

// highestBid returns the bid with the greatest amount; earlier sequence wins
// a tie.
func highestBid(bids []model.Bid) model.Bid {
	top := bids[0]
	for _, b := range bids[1:] {
		if b.Amount.GreaterThan(top.Amount) || (b.Amount.Equal(top.Amount) && b.Seq < top.Seq) {
			top = b
		}
	}
	return top
}

// secondBidder returns the highest-bidding active bidder that is not the
// leader, or "" when there is none.
func secondBidder(bids []model.Bid, leaderID string) string {
	rest := removeBidder(bids, leaderID)
	if len(rest) == 0 {
		return ""
	}
	return highestBid(rest).BidderID
}
