package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"auction-engine/internal/config"
	"auction-engine/internal/engine"
	"auction-engine/internal/escrow"
	model "auction-engine/internal/models"
	"auction-engine/internal/money"
	"auction-engine/internal/repository"
	"auction-engine/internal/server"

	"github.com/gin-gonic/gin"
)

// testBidder pairs a bidder with its starting purse for seeding.
type testBidder struct {
	bidder model.Bidder
	purse  int64
}

// SetupTestRouter initializes the router with an in-memory repository and
// escrow ledger for integration testing.
func SetupTestRouter(items []model.Item, bidders []testBidder) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	ledger := escrow.NewLedger()

	for _, item := range items {
		item.Status = model.StatusOpen
		repo.AddItem(item)
	}
	for _, tb := range bidders {
		repo.AddBidder(tb.bidder)
		ledger.Register(tb.bidder.BidderID, money.FromInt64(tb.purse))
	}

	auctionEngine := engine.NewAuctionEngine(repo, ledger, config.DefaultRules())
	return server.SetupRouter(auctionEngine)
}

// ExecuteRequestAndParse executes an HTTP request on the given router and parses the response
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// defaultCatalog seeds a small auction: one item per tier plus two regular
// bidders and an admin, each with a large purse.
func defaultCatalog() ([]model.Item, []testBidder) {
	items := []model.Item{
		{ItemID: "item-silver", Name: "Opening Batsman", Role: "Batsman", Tier: model.TierSilver, BasePrice: money.FromInt64(1_000_000)},
		{ItemID: "item-gold", Name: "Fast Bowler", Role: "Bowler", Tier: model.TierGold, BasePrice: money.FromInt64(5_000_000)},
	}
	bidders := []testBidder{
		{bidder: model.Bidder{BidderID: "bidder1", Name: "Franchise One", TeamName: "Titans"}, purse: 1_000_000_000},
		{bidder: model.Bidder{BidderID: "bidder2", Name: "Franchise Two", TeamName: "Riders"}, purse: 1_000_000_000},
		{bidder: model.Bidder{BidderID: "admin", Name: "Auctioneer", IsAdmin: true}, purse: 0},
	}
	return items, bidders
}
