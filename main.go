package main

import (
	"fmt"
	"os"

	"auction-engine/internal/config"
	"auction-engine/internal/engine"
	"auction-engine/internal/escrow"
	model "auction-engine/internal/models"
	"auction-engine/internal/money"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"
	"auction-engine/utils"
)

// defaultPurse mirrors the seeded bidder purse of 1,000,000,000.
const defaultPurse = 1_000_000_000

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	ledger := escrow.NewLedger()

	prepopulateCatalog(repo)
	prepopulateBidders(repo, ledger)

	auctionEngine := engine.NewAuctionEngine(repo, ledger, cfg.Rules)

	router := server.SetupRouter(auctionEngine)

	addr := fmt.Sprintf(":%d", cfg.Port)
	fmt.Printf("Starting auction server on %s...\n", addr)
	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// prepopulateCatalog adds sample items to the in-memory repo
func prepopulateCatalog(repo *repository.MemoryRepo) {
	items := []model.Item{
		{ItemID: "item1", Name: "R. Sharma", Role: "Batsman", Tier: model.TierSapphire, BasePrice: money.FromInt64(20_000_000)},
		{ItemID: "item2", Name: "A. Khan", Role: "Bowler", Tier: model.TierGold, BasePrice: money.FromInt64(10_000_000)},
		{ItemID: "item3", Name: "S. Patel", Role: "Allrounder", Tier: model.TierEmerald, BasePrice: money.FromInt64(5_000_000)},
		{ItemID: "item4", Name: "D. Fernando", Role: "WicketKeeper", Tier: model.TierSilver, BasePrice: money.FromInt64(1_000_000)},
	}

	for _, item := range items {
		repo.AddItem(item)
	}
}

// prepopulateBidders seeds bidder accounts and their escrow purses
func prepopulateBidders(repo *repository.MemoryRepo, ledger *escrow.Ledger) {
	bidders := []model.Bidder{
		{BidderID: "bidder1", Name: "Team One", TeamName: "Strikers"},
		{BidderID: "bidder2", Name: "Team Two", TeamName: "Royals"},
		{BidderID: "bidder3", Name: "Team Three", TeamName: "Titans"},
		{BidderID: "admin", Name: "Auctioneer", TeamName: "", IsAdmin: true},
	}

	for _, bidder := range bidders {
		repo.AddBidder(bidder)
		ledger.Register(bidder.BidderID, money.FromInt64(defaultPurse))
	}
}
