package handler

import (
	"net/http"
	"strconv"
	"time"

	"auction-platform/internal/auctionService"
	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// AuctionServiceInterface is the lifecycle surface the handler needs.
type AuctionServiceInterface interface {
	Create(auctioneer model.User, p auction.CreateParams) (model.Auction, error)
	List() ([]model.Auction, error)
	Detail(id string) (model.Auction, error)
	Mine(ownerID string) ([]model.Auction, error)
	Delete(id, requesterID string) error
	Republish(id string, auctioneer model.User, start, end time.Time) (model.Auction, error)
}

// RepublishRequest is the PUT body for republishing a closed auction.
type RepublishRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// CreateHandler handles POST /auctions (multipart form).
func (h *AuctionHandler) CreateHandler(c *gin.Context) {
	auctioneer, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "CreateHandler", auctionerrors.ErrInvalidToken)
		return
	}

	imageName, imageData, err := helpers.ReadImageFile(c, "image")
	if err != nil {
		helpers.RespondError(c, "CreateHandler", err)
		return
	}

	startTime, err1 := time.Parse(time.RFC3339, c.PostForm("start_time"))
	endTime, err2 := time.Parse(time.RFC3339, c.PostForm("end_time"))
	if err1 != nil || err2 != nil {
		helpers.RespondError(c, "CreateHandler", auctionerrors.ErrInvalidInput)
		return
	}
	startingBid, err := strconv.ParseFloat(c.PostForm("starting_bid"), 64)
	if err != nil {
		helpers.RespondError(c, "CreateHandler", auctionerrors.ErrInvalidInput)
		return
	}

	created, err := h.service.Create(auctioneer, auction.CreateParams{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Condition:   c.PostForm("condition"),
		StartingBid: startingBid,
		StartTime:   startTime,
		EndTime:     endTime,
		ImageName:   imageName,
		ImageData:   imageData,
	})
	if err != nil {
		helpers.RespondError(c, "CreateHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "auction created successfully")
	helpers.LogSuccess("CreateHandler", "auction created successfully", map[string]any{
		"auction_id": created.AuctionID,
		"created_by": created.CreatedBy,
	})
}

// ListHandler handles GET /auctions
func (h *AuctionHandler) ListHandler(c *gin.Context) {
	auctions, err := h.service.List()
	if err != nil {
		helpers.RespondError(c, "ListHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// DetailHandler handles GET /auctions/:id
func (h *AuctionHandler) DetailHandler(c *gin.Context) {
	detail, err := h.service.Detail(c.Param("id"))
	if err != nil {
		helpers.RespondError(c, "DetailHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, detail, "auction retrieved successfully")
}

// MineHandler handles GET /auctions/my
func (h *AuctionHandler) MineHandler(c *gin.Context) {
	owner, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "MineHandler", auctionerrors.ErrInvalidToken)
		return
	}
	auctions, err := h.service.Mine(owner.UserID)
	if err != nil {
		helpers.RespondError(c, "MineHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, auctions, "auctions retrieved successfully")
}

// DeleteHandler handles DELETE /auctions/:id
func (h *AuctionHandler) DeleteHandler(c *gin.Context) {
	owner, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "DeleteHandler", auctionerrors.ErrInvalidToken)
		return
	}
	if err := h.service.Delete(c.Param("id"), owner.UserID); err != nil {
		helpers.RespondError(c, "DeleteHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
	helpers.LogSuccess("DeleteHandler", "auction deleted successfully", map[string]any{
		"auction_id": c.Param("id"),
	})
}

// RepublishHandler handles PUT /auctions/:id/republish
func (h *AuctionHandler) RepublishHandler(c *gin.Context) {
	var req RepublishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RepublishHandler", err)
		return
	}
	owner, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "RepublishHandler", auctionerrors.ErrInvalidToken)
		return
	}

	updated, err := h.service.Republish(c.Param("id"), owner, req.StartTime, req.EndTime)
	if err != nil {
		helpers.RespondError(c, "RepublishHandler", err)
		return
	}

	utils.JSONResponse(c, http.StatusOK, updated, "auction republished successfully")
	helpers.LogSuccess("RepublishHandler", "auction republished successfully", map[string]any{
		"auction_id": updated.AuctionID,
		"start_time": updated.StartTime,
		"end_time":   updated.EndTime,
	})
}
