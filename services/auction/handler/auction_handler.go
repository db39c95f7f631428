package handler

import (
	"fmt"
	"net/http"

	"auction-engine/internal/engine"
	"auction-engine/internal/escrow"
	model "auction-engine/internal/models"
	"auction-engine/internal/money"
	"auction-engine/services/auction/helpers"
	"auction-engine/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -source=auction_handler.go -destination=mock_engine.go -package=handler

// AuctionEngineInterface is the engine surface the HTTP layer depends on.
type AuctionEngineInterface interface {
	PlaceBid(itemID, bidderID string, amount *money.Money) (engine.BidOutcome, error)
	ExitBid(itemID, bidderID string, asAdmin bool) (engine.BidOutcome, error)
	Settle(itemID string) (engine.Settlement, error)
	Release(itemID string) (engine.Refund, error)
	GetBidHistory(itemID string) ([]model.Bid, error)
	GetAuctionState(itemID string) (engine.AuctionState, error)
	GetPurseState(bidderID string) (escrow.PurseState, error)
	GetBidderDetails(bidderID string) (engine.BidderDetails, error)
}

type AuctionHandler struct {
	engine AuctionEngineInterface
}

func NewAuctionHandler(engine AuctionEngineInterface) *AuctionHandler {
	return &AuctionHandler{engine: engine}
}

// PlaceBidHandler handles PUT /items/:item_id/bid
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	var amount *money.Money
	if req.Amount != "" {
		parsed, err := money.FromString(req.Amount)
		if err != nil {
			helpers.HandleBindError(c, "PlaceBidHandler", err)
			return
		}
		amount = &parsed
	}

	outcome, err := h.engine.PlaceBid(itemID, req.BidderID, amount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":   "PlaceBidHandler",
			"item_id":   itemID,
			"bidder_id": req.BidderID,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidStateResponse(outcome), "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"item_id":   outcome.ItemID,
		"bidder_id": outcome.LeaderID,
		"high_bid":  outcome.HighBid.String(),
	})
}

// ExitBidHandler handles PUT /items/:item_id/exit
func (h *AuctionHandler) ExitBidHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	var req helpers.ExitBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ExitBidHandler", err)
		return
	}

	outcome, err := h.engine.ExitBid(itemID, req.BidderID, req.AsAdmin)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ExitBidHandler: failed to exit bid", map[string]any{
			"item_id":   itemID,
			"bidder_id": req.BidderID,
			"as_admin":  req.AsAdmin,
			"error":     err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, bidStateResponse(outcome), "bid exited successfully")
	helpers.LogSuccess("ExitBidHandler", "bid exited successfully", map[string]any{
		"item_id":  outcome.ItemID,
		"leader":   outcome.LeaderID,
		"as_admin": req.AsAdmin,
	})
}

// SettleHandler handles POST /items/:item_id/settle
func (h *AuctionHandler) SettleHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	settlement, err := h.engine.Settle(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("SettleHandler: failed to settle item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.SettlementResponse{
		ItemID:   settlement.ItemID,
		WinnerID: settlement.WinnerID,
		Amount:   settlement.Amount.String(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "item settled successfully")
	helpers.LogSuccess("SettleHandler", "item settled successfully", map[string]any{
		"item_id": settlement.ItemID,
		"winner":  settlement.WinnerID,
		"amount":  settlement.Amount.String(),
	})
}

// ReleaseHandler handles POST /items/:item_id/release
func (h *AuctionHandler) ReleaseHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	refund, err := h.engine.Release(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ReleaseHandler: failed to release item", map[string]any{
			"item_id": itemID,
			"error":   err.Error(),
		})
		return
	}

	resp := helpers.RefundResponse{
		ItemID:   refund.ItemID,
		BidderID: refund.BidderID,
		Amount:   refund.Amount.String(),
	}
	utils.JSONResponse(c, http.StatusOK, resp, "item released successfully")
	helpers.LogSuccess("ReleaseHandler", "item released successfully", map[string]any{
		"item_id":   refund.ItemID,
		"bidder_id": refund.BidderID,
		"amount":    refund.Amount.String(),
	})
}

// GetBidHistoryHandler handles GET /items/:item_id/bids
func (h *AuctionHandler) GetBidHistoryHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	bids, err := h.engine.GetBidHistory(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidHistoryHandler: error retrieving bids", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bid history retrieved successfully")
	helpers.LogSuccess("GetBidHistoryHandler", "bid history retrieved successfully", map[string]any{
		"item_id": itemID,
		"count":   len(bids),
	})
}

// GetAuctionStateHandler handles GET /items/:item_id/state
func (h *AuctionHandler) GetAuctionStateHandler(c *gin.Context) {
	itemID := c.Param("item_id")

	state, err := h.engine.GetAuctionState(itemID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionStateHandler: error retrieving state", map[string]any{"item_id": itemID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, state, "auction state retrieved successfully")
}

// GetPurseHandler handles GET /bidders/:bidder_id/purse
func (h *AuctionHandler) GetPurseHandler(c *gin.Context) {
	bidderID := c.Param("bidder_id")

	purse, err := h.engine.GetPurseState(bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetPurseHandler: error retrieving purse", map[string]any{"bidder_id": bidderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, purse, "purse state retrieved successfully")
}

// GetBidderDetailsHandler handles GET /bidders/:bidder_id/details
func (h *AuctionHandler) GetBidderDetailsHandler(c *gin.Context) {
	bidderID := c.Param("bidder_id")

	details, err := h.engine.GetBidderDetails(bidderID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidderDetailsHandler: error retrieving details", map[string]any{"bidder_id": bidderID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, details, "bidder details retrieved successfully")
}

func bidStateResponse(outcome engine.BidOutcome) helpers.BidStateResponse {
	resp := helpers.BidStateResponse{
		ItemID:   outcome.ItemID,
		LeaderID: outcome.LeaderID,
	}
	if outcome.HighBid != nil {
		resp.HighBid = outcome.HighBid.String()
	}
	return resp
}
