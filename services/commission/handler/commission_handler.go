package handler

import (
	"net/http"
	"strconv"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// CommissionServiceInterface is the proof-submission surface the handler needs.
type CommissionServiceInterface interface {
	SubmitProof(submitter model.User, amount float64, comment, imageName string, imageData []byte) (model.PaymentProof, bool, error)
}

type CommissionHandler struct {
	service CommissionServiceInterface
}

func NewCommissionHandler(service CommissionServiceInterface) *CommissionHandler {
	return &CommissionHandler{service: service}
}

// SubmitProofHandler handles POST /commissions/proof (multipart form).
func (h *CommissionHandler) SubmitProofHandler(c *gin.Context) {
	submitter, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "SubmitProofHandler", auctionerrors.ErrInvalidToken)
		return
	}

	imageName, imageData, err := helpers.ReadImageFile(c, "proof")
	if err != nil {
		helpers.RespondError(c, "SubmitProofHandler", err)
		return
	}
	amount, err := strconv.ParseFloat(c.PostForm("amount"), 64)
	if err != nil {
		helpers.RespondError(c, "SubmitProofHandler", auctionerrors.ErrInvalidInput)
		return
	}

	proof, created, err := h.service.SubmitProof(submitter, amount, c.PostForm("comment"), imageName, imageData)
	if err != nil {
		helpers.RespondError(c, "SubmitProofHandler", err)
		return
	}
	if !created {
		utils.JSONResponse(c, http.StatusOK, nil, "you don't have any unpaid commission")
		return
	}

	utils.JSONResponse(c, http.StatusCreated, proof,
		"proof submitted successfully; it will be reviewed within 24 hours")
	helpers.LogSuccess("SubmitProofHandler", "proof submitted successfully", map[string]any{
		"proof_id": proof.ProofID,
		"user_id":  submitter.UserID,
		"amount":   amount,
	})
}
