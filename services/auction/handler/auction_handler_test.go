package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"auction-engine/internal/auctionerrors"
	"auction-engine/internal/engine"
	"auction-engine/internal/escrow"
	model "auction-engine/internal/models"
	"auction-engine/internal/money"
	"auction-engine/services/auction/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func setupHandlerTest(t *testing.T) (*MockAuctionEngineInterface, *gin.Engine) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockEngine := NewMockAuctionEngineInterface(ctrl)
	h := NewAuctionHandler(mockEngine)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.PUT("/items/:item_id/bid", h.PlaceBidHandler)
	router.PUT("/items/:item_id/exit", h.ExitBidHandler)
	router.POST("/items/:item_id/settle", h.SettleHandler)
	router.POST("/items/:item_id/release", h.ReleaseHandler)
	router.GET("/items/:item_id/bids", h.GetBidHistoryHandler)
	router.GET("/bidders/:bidder_id/purse", h.GetPurseHandler)
	return mockEngine, router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	switch v := body.(type) {
	case nil:
	case string:
		reqBody = []byte(v)
	default:
		var err error
		reqBody, err = json.Marshal(v)
		require.NoError(t, err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return resp, w
}

// Test PlaceBidHandler
func TestPlaceBidHandler(t *testing.T) {
	amount := money.FromInt64(2_000_000)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionEngineInterface)
		expectedStatus int
	}{
		{
			name:        "success_explicit_amount",
			requestBody: helpers.PlaceBidRequest{BidderID: "bidder1", Amount: "2000000"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					PlaceBid("item1", "bidder1", gomock.Any()).
					Return(engine.BidOutcome{ItemID: "item1", HighBid: &amount, LeaderID: "bidder1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success_omitted_amount",
			requestBody: helpers.PlaceBidRequest{BidderID: "bidder1"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					PlaceBid("item1", "bidder1", nil).
					Return(engine.BidOutcome{ItemID: "item1", HighBid: &amount, LeaderID: "bidder1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid_json",
			requestBody:    `{bad json}`,
			mockSetup:      func(m *MockAuctionEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing_bidder_id",
			requestBody:    map[string]any{"amount": "100"},
			mockSetup:      func(m *MockAuctionEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed_amount",
			requestBody:    helpers.PlaceBidRequest{BidderID: "bidder1", Amount: "two million"},
			mockSetup:      func(m *MockAuctionEngineInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "bid_too_low",
			requestBody: helpers.PlaceBidRequest{BidderID: "bidder1", Amount: "100"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					PlaceBid("item1", "bidder1", gomock.Any()).
					Return(engine.BidOutcome{}, fmt.Errorf("engine: %w", auctionerrors.ErrBidTooLow))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "insufficient_funds",
			requestBody: helpers.PlaceBidRequest{BidderID: "bidder1", Amount: "2000000"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					PlaceBid("item1", "bidder1", gomock.Any()).
					Return(engine.BidOutcome{}, fmt.Errorf("engine: %w", auctionerrors.ErrInsufficientFunds))
			},
			expectedStatus: http.StatusPaymentRequired,
		},
		{
			name:        "item_not_found",
			requestBody: helpers.PlaceBidRequest{BidderID: "bidder1"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					PlaceBid("item1", "bidder1", nil).
					Return(engine.BidOutcome{}, fmt.Errorf("engine: %w", auctionerrors.ErrItemNotFound))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:        "engine_internal_error",
			requestBody: helpers.PlaceBidRequest{BidderID: "bidder1"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					PlaceBid("item1", "bidder1", nil).
					Return(engine.BidOutcome{}, errors.New("storage down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockEngine, router := setupHandlerTest(t)
			tc.mockSetup(mockEngine)

			resp, w := doJSON(t, router, http.MethodPut, "/items/item1/bid", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)

			if tc.expectedStatus == http.StatusOK {
				data := resp["data"].(map[string]any)
				require.Equal(t, "item1", data["item_id"])
				require.Equal(t, "bidder1", data["leader_id"])
				require.Equal(t, "2000000", data["high_bid"])
			}
		})
	}
}

// Test ExitBidHandler
func TestExitBidHandler(t *testing.T) {
	amount := money.FromInt64(2_000_000)

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func(m *MockAuctionEngineInterface)
		expectedStatus int
	}{
		{
			name:        "success_self_exit",
			requestBody: helpers.ExitBidRequest{BidderID: "bidder2"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					ExitBid("item1", "bidder2", false).
					Return(engine.BidOutcome{ItemID: "item1", HighBid: &amount, LeaderID: "bidder1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "success_admin_force_exit",
			requestBody: helpers.ExitBidRequest{AsAdmin: true},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					ExitBid("item1", "", true).
					Return(engine.BidOutcome{ItemID: "item1", HighBid: &amount, LeaderID: "bidder1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "leader_cannot_exit",
			requestBody: helpers.ExitBidRequest{BidderID: "bidder1"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					ExitBid("item1", "bidder1", false).
					Return(engine.BidOutcome{}, fmt.Errorf("engine: %w", auctionerrors.ErrLeaderCannotExit))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:        "no_active_bid",
			requestBody: helpers.ExitBidRequest{BidderID: "bidder3"},
			mockSetup: func(m *MockAuctionEngineInterface) {
				m.EXPECT().
					ExitBid("item1", "bidder3", false).
					Return(engine.BidOutcome{}, fmt.Errorf("engine: %w", auctionerrors.ErrNoActiveBid))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockEngine, router := setupHandlerTest(t)
			tc.mockSetup(mockEngine)

			_, w := doJSON(t, router, http.MethodPut, "/items/item1/exit", tc.requestBody)
			require.Equal(t, tc.expectedStatus, w.Code)
		})
	}
}

// Test SettleHandler and ReleaseHandler
func TestSettleAndReleaseHandlers(t *testing.T) {
	t.Run("settle_success", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			Settle("item1").
			Return(engine.Settlement{ItemID: "item1", WinnerID: "bidder1", Amount: money.FromInt64(2_000_000)}, nil)

		resp, w := doJSON(t, router, http.MethodPost, "/items/item1/settle", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "bidder1", data["winner_id"])
		require.Equal(t, "2000000", data["amount"])
	})

	t.Run("settle_no_bids", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			Settle("item1").
			Return(engine.Settlement{}, fmt.Errorf("engine: %w", auctionerrors.ErrNoBids))

		_, w := doJSON(t, router, http.MethodPost, "/items/item1/settle", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("release_success", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			Release("item1").
			Return(engine.Refund{ItemID: "item1", BidderID: "bidder1", Amount: money.FromInt64(2_000_000)}, nil)

		resp, w := doJSON(t, router, http.MethodPost, "/items/item1/release", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "bidder1", data["bidder_id"])
		require.Equal(t, "2000000", data["amount"])
	})

	t.Run("release_not_sold", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			Release("item1").
			Return(engine.Refund{}, fmt.Errorf("engine: %w", auctionerrors.ErrNotSold))

		_, w := doJSON(t, router, http.MethodPost, "/items/item1/release", nil)
		require.Equal(t, http.StatusConflict, w.Code)
	})
}

// Test read-only handlers
func TestQueryHandlers(t *testing.T) {
	t.Run("bid_history", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetBidHistory("item1").
			Return([]model.Bid{
				{BidID: "bid2", ItemID: "item1", BidderID: "bidder2", Amount: money.FromInt64(3_000_000), Seq: 2},
				{BidID: "bid1", ItemID: "item1", BidderID: "bidder1", Amount: money.FromInt64(1_000_000), Seq: 1},
			}, nil)

		resp, w := doJSON(t, router, http.MethodGet, "/items/item1/bids", nil)
		require.Equal(t, http.StatusOK, w.Code)

		bids := resp["data"].([]any)
		require.Len(t, bids, 2)
		first := bids[0].(map[string]any)
		require.Equal(t, float64(2), first["seq"])
	})

	t.Run("bid_history_unknown_item", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetBidHistory("ghost").
			Return(nil, fmt.Errorf("engine: %w", auctionerrors.ErrItemNotFound))

		_, w := doJSON(t, router, http.MethodGet, "/items/ghost/bids", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("purse_state", func(t *testing.T) {
		mockEngine, router := setupHandlerTest(t)
		mockEngine.EXPECT().
			GetPurseState("bidder1").
			Return(escrow.PurseState{
				Available: money.FromInt64(8_000_000),
				Locked:    money.FromInt64(2_000_000),
			}, nil)

		resp, w := doJSON(t, router, http.MethodGet, "/bidders/bidder1/purse", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "8000000", data["available"])
		require.Equal(t, "2000000", data["locked"])
	})
}
