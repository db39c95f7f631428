package server

import (
	"auction-engine/internal/engine"
	handler "auction-engine/services/auction/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(auctionEngine *engine.AuctionEngine) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	auctionHandler := handler.NewAuctionHandler(auctionEngine)

	items := router.Group("/items")
	{
		items.PUT("/:item_id/bid", auctionHandler.PlaceBidHandler)
		items.PUT("/:item_id/exit", auctionHandler.ExitBidHandler)
		items.POST("/:item_id/settle", auctionHandler.SettleHandler)
		items.POST("/:item_id/release", auctionHandler.ReleaseHandler)
		items.GET("/:item_id/bids", auctionHandler.GetBidHistoryHandler)
		items.GET("/:item_id/state", auctionHandler.GetAuctionStateHandler)
	}

	bidders := router.Group("/bidders")
	{
		bidders.GET("/:bidder_id/purse", auctionHandler.GetPurseHandler)
		bidders.GET("/:bidder_id/details", auctionHandler.GetBidderDetailsHandler)
	}

	return router
}
