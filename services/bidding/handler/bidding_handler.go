package handler

import (
	"net/http"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// BiddingServiceInterface is the bid-acceptance surface the handler needs.
type BiddingServiceInterface interface {
	PlaceBid(auctionID string, bidder model.User, amount float64) (model.Auction, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
}

// PlaceBidRequest is the POST body for placing a bid.
type PlaceBidRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type BiddingHandler struct {
	service BiddingServiceInterface
}

func NewBiddingHandler(service BiddingServiceInterface) *BiddingHandler {
	return &BiddingHandler{service: service}
}

// PlaceBidHandler handles POST /auctions/:id/bids
func (h *BiddingHandler) PlaceBidHandler(c *gin.Context) {
	var req PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}
	bidder, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "PlaceBidHandler", auctionerrors.ErrInvalidToken)
		return
	}

	auctionID := c.Param("id")
	auction, err := h.service.PlaceBid(auctionID, bidder, req.Amount)
	if err != nil {
		helpers.RespondError(c, "PlaceBidHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, auction, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"auction_id":  auctionID,
		"bidder_id":   bidder.UserID,
		"amount":      req.Amount,
		"current_bid": auction.CurrentBid,
	})
}

// GetBidsHandler handles GET /auctions/:id/bids
func (h *BiddingHandler) GetBidsHandler(c *gin.Context) {
	auctionID := c.Param("id")
	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil {
		helpers.RespondError(c, "GetBidsHandler", err)
		return
	}
	if bids == nil {
		bids = []model.Bid{}
	}
	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
}
