package handler

import (
	"net/http"

	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// CommissionReviewInterface is the proof-review surface of the commission
// service used by the admin endpoints.
type CommissionReviewInterface interface {
	ListProofs() ([]model.PaymentProof, error)
	ProofDetail(id string) (model.PaymentProof, error)
	ReviewProof(id string, status model.ProofStatus, amount float64) (model.PaymentProof, error)
	DeleteProof(id string) error
}

// AuctionAdminInterface is the auction surface used by the admin endpoints.
type AuctionAdminInterface interface {
	Delete(id, requesterID string) error
}

// ReviewProofRequest is the PUT body for reviewing a proof.
type ReviewProofRequest struct {
	Status model.ProofStatus `json:"status" binding:"required"`
	Amount float64           `json:"amount" binding:"required,gt=0"`
}

// AdminHandler serves the SuperAdmin review surface.
type AdminHandler struct {
	commissions CommissionReviewInterface
	auctions    AuctionAdminInterface
}

func NewAdminHandler(commissions CommissionReviewInterface, auctions AuctionAdminInterface) *AdminHandler {
	return &AdminHandler{commissions: commissions, auctions: auctions}
}

// ListProofsHandler handles GET /admin/payment-proofs
func (h *AdminHandler) ListProofsHandler(c *gin.Context) {
	proofs, err := h.commissions.ListProofs()
	if err != nil {
		helpers.RespondError(c, "ListProofsHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, proofs, "payment proofs retrieved successfully")
}

// ProofDetailHandler handles GET /admin/payment-proofs/:id
func (h *AdminHandler) ProofDetailHandler(c *gin.Context) {
	proof, err := h.commissions.ProofDetail(c.Param("id"))
	if err != nil {
		helpers.RespondError(c, "ProofDetailHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, proof, "payment proof retrieved successfully")
}

// ReviewProofHandler handles PUT /admin/payment-proofs/:id
func (h *AdminHandler) ReviewProofHandler(c *gin.Context) {
	var req ReviewProofRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ReviewProofHandler", err)
		return
	}
	proof, err := h.commissions.ReviewProof(c.Param("id"), req.Status, req.Amount)
	if err != nil {
		helpers.RespondError(c, "ReviewProofHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, proof, "payment proof updated successfully")
	helpers.LogSuccess("ReviewProofHandler", "payment proof updated successfully", map[string]any{
		"proof_id": proof.ProofID,
		"status":   proof.Status,
	})
}

// DeleteProofHandler handles DELETE /admin/payment-proofs/:id
func (h *AdminHandler) DeleteProofHandler(c *gin.Context) {
	if err := h.commissions.DeleteProof(c.Param("id")); err != nil {
		helpers.RespondError(c, "DeleteProofHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "payment proof deleted successfully")
}

// DeleteAuctionHandler handles DELETE /admin/auctions/:id
// The empty requester id bypasses the ownership check; the role guard on
// the route restricts this to super admins.
func (h *AdminHandler) DeleteAuctionHandler(c *gin.Context) {
	if err := h.auctions.Delete(c.Param("id"), ""); err != nil {
		helpers.RespondError(c, "DeleteAuctionHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "auction deleted successfully")
}
