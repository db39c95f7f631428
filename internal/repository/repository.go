package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
	"auction-engine/internal/money"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB defines the item, bid-log and ownership storage for the engine.
type AuctionDB interface {
	GetItem(itemID string) (model.Item, error)
	SetItemBidState(itemID string, highBid *money.Money, leaderID string) error
	SetItemStatus(itemID string, status model.ItemStatus) error

	AppendBid(bid model.Bid) (model.Bid, error)
	ActiveBids(itemID string) ([]model.Bid, error)
	DeactivateBidderBids(itemID, bidderID string) error
	DeactivateAllBids(itemID string) error
	PurgeBids(itemID string) error
	BidsByItem(itemID string) ([]model.Bid, error)
	BidsByBidder(bidderID string) ([]model.Bid, error)

	GetBidder(bidderID string) (model.Bidder, error)

	RecordOwnership(own model.Ownership) error
	ActiveOwnership(itemID string) (model.Ownership, error)
	InvalidateOwnership(itemID string) error
	OwnershipsByBidder(bidderID string) ([]model.Ownership, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu      sync.RWMutex
	items   map[string]*model.Item
	bidders map[string]model.Bidder
	bids    map[string][]model.Bid       // key: itemID -> append-only bid log
	seqs    map[string]uint64            // key: itemID -> last assigned sequence number
	owners  map[string][]model.Ownership // key: itemID -> ownership records, newest last
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		items:   make(map[string]*model.Item),
		bidders: make(map[string]model.Bidder),
		bids:    make(map[string][]model.Bid),
		seqs:    make(map[string]uint64),
		owners:  make(map[string][]model.Ownership),
	}
}

// AddItem seeds an item into the catalog. New items start open with no bids.
func (r *MemoryRepo) AddItem(item model.Item) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item.Status == "" {
		item.Status = model.StatusOpen
	}
	r.items[item.ItemID] = &item
}

// AddBidder seeds a bidder account.
func (r *MemoryRepo) AddBidder(bidder model.Bidder) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bidders[bidder.BidderID] = bidder
}

// GetItem returns a copy of the item.
func (r *MemoryRepo) GetItem(itemID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return *item, nil
}

// SetItemBidState updates the item's current high bid and leader. A nil
// highBid clears both.
func (r *MemoryRepo) SetItemBidState(itemID string, highBid *money.Money, leaderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("set bid state for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if highBid == nil {
		item.CurrentBid = nil
		item.CurrentBidder = ""
		return nil
	}
	amount := *highBid
	item.CurrentBid = &amount
	item.CurrentBidder = leaderID
	return nil
}

// SetItemStatus moves the item between open and sold.
func (r *MemoryRepo) SetItemStatus(itemID string, status model.ItemStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return fmt.Errorf("set status for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	item.Status = status
	return nil
}

// AppendBid assigns the item's next sequence number and appends the bid to
// the log, returning the stored record.
func (r *MemoryRepo) AppendBid(bid model.Bid) (model.Bid, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[bid.ItemID]; !ok {
		return model.Bid{}, fmt.Errorf("append bid for item %s: %w", bid.ItemID, auctionerrors.ErrItemNotFound)
	}

	r.seqs[bid.ItemID]++
	bid.Seq = r.seqs[bid.ItemID]
	r.bids[bid.ItemID] = append(r.bids[bid.ItemID], bid)
	return bid, nil
}

// ActiveBids returns the item's active bids ordered by sequence number.
func (r *MemoryRepo) ActiveBids(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return nil, fmt.Errorf("active bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	active := make([]model.Bid, 0, 2)
	for _, b := range r.bids[itemID] {
		if b.Active {
			active = append(active, b)
		}
	}
	return active, nil
}

// DeactivateBidderBids flips all of one bidder's bids on an item inactive.
func (r *MemoryRepo) DeactivateBidderBids(itemID, bidderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("deactivate bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	log := r.bids[itemID]
	for i := range log {
		if log[i].BidderID == bidderID {
			log[i].Active = false
		}
	}
	return nil
}

// DeactivateAllBids flips every bid on an item inactive; used at settlement.
func (r *MemoryRepo) DeactivateAllBids(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("deactivate all bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	log := r.bids[itemID]
	for i := range log {
		log[i].Active = false
	}
	return nil
}

// PurgeBids discards the item's entire bid log and resets its sequence
// counter; only the Release reversal calls this.
func (r *MemoryRepo) PurgeBids(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[itemID]; !ok {
		return fmt.Errorf("purge bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	delete(r.bids, itemID)
	delete(r.seqs, itemID)
	return nil
}

// BidsByItem returns the item's full bid history, newest first.
func (r *MemoryRepo) BidsByItem(itemID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.items[itemID]; !ok {
		return nil, fmt.Errorf("bids for item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}

	history := append([]model.Bid(nil), r.bids[itemID]...)
	sort.Slice(history, func(i, j int) bool { return history[i].Seq > history[j].Seq })
	return history, nil
}

// BidsByBidder returns every bid a bidder has placed across items, newest
// first per item log order.
func (r *MemoryRepo) BidsByBidder(bidderID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.bidders[bidderID]; !ok {
		return nil, fmt.Errorf("bids for bidder %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}

	var out []model.Bid
	for _, log := range r.bids {
		for _, b := range log {
			if b.BidderID == bidderID {
				out = append(out, b)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// GetBidder returns the bidder account.
func (r *MemoryRepo) GetBidder(bidderID string) (model.Bidder, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bidder, ok := r.bidders[bidderID]
	if !ok {
		return model.Bidder{}, fmt.Errorf("get bidder %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}
	return bidder, nil
}

// RecordOwnership appends a sale record for the item.
func (r *MemoryRepo) RecordOwnership(own model.Ownership) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[own.ItemID]; !ok {
		return fmt.Errorf("record ownership for item %s: %w", own.ItemID, auctionerrors.ErrItemNotFound)
	}
	r.owners[own.ItemID] = append(r.owners[own.ItemID], own)
	return nil
}

// ActiveOwnership returns the item's active sale record, if any.
func (r *MemoryRepo) ActiveOwnership(itemID string) (model.Ownership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, own := range r.owners[itemID] {
		if own.Active {
			return own, nil
		}
	}
	return model.Ownership{}, fmt.Errorf("active ownership for item %s: %w", itemID, auctionerrors.ErrNoOwnership)
}

// InvalidateOwnership flips the item's active sale record inactive; the
// record itself is kept for audit.
func (r *MemoryRepo) InvalidateOwnership(itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.owners[itemID]
	for i := range records {
		if records[i].Active {
			records[i].Active = false
			return nil
		}
	}
	return fmt.Errorf("invalidate ownership for item %s: %w", itemID, auctionerrors.ErrNoOwnership)
}

// OwnershipsByBidder returns a bidder's active holdings.
func (r *MemoryRepo) OwnershipsByBidder(bidderID string) ([]model.Ownership, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.bidders[bidderID]; !ok {
		return nil, fmt.Errorf("ownerships for bidder %s: %w", bidderID, auctionerrors.ErrBidderNotFound)
	}

	var out []model.Ownership
	for _, records := range r.owners {
		for _, own := range records {
			if own.Active && own.BidderID == bidderID {
				out = append(out, own)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}
