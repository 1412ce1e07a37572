package handler

import (
	"net/http"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	user "auction-platform/internal/userService"
	"auction-platform/services/helpers"
	"auction-platform/utils"

	"github.com/gin-gonic/gin"
)

// UserServiceInterface is the identity surface the handler needs.
type UserServiceInterface interface {
	Register(p user.RegisterParams) (model.User, error)
	Login(email, password string) (model.User, error)
	IssueToken(u model.User) (string, error)
	Profile(id string) (model.User, error)
	Leaderboard() ([]model.User, error)
	RequestPasswordReset(email string) error
	ResetPassword(email, otp, newPassword string) error
}

// LoginRequest is the POST body for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest is the POST body for requesting an OTP.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest is the POST body for redeeming an OTP.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// UserHandler serves the account endpoints. Session tokens ride in an
// httpOnly cookie.
type UserHandler struct {
	service    UserServiceInterface
	cookieName string
	cookieTTL  int // seconds
}

func NewUserHandler(service UserServiceInterface, cookieName string, cookieTTLSeconds int) *UserHandler {
	return &UserHandler{service: service, cookieName: cookieName, cookieTTL: cookieTTLSeconds}
}

func (h *UserHandler) setSession(c *gin.Context, u model.User) error {
	token, err := h.service.IssueToken(u)
	if err != nil {
		return err
	}
	c.SetCookie(h.cookieName, token, h.cookieTTL, "/", "", false, true)
	return nil
}

// RegisterHandler handles POST /users/register (multipart form).
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	imageName, imageData, err := helpers.ReadImageFile(c, "profile_image")
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err)
		return
	}

	registered, err := h.service.Register(user.RegisterParams{
		UserName: c.PostForm("user_name"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Phone:    c.PostForm("phone"),
		Address:  c.PostForm("address"),
		Role:     model.Role(c.PostForm("role")),
		PaymentMethods: model.PaymentMethods{
			BankTransfer: model.BankTransfer{
				AccountNumber: c.PostForm("bank_account_number"),
				AccountName:   c.PostForm("bank_account_name"),
				BankName:      c.PostForm("bank_name"),
			},
			GooglePayNo: c.PostForm("google_pay_account_number"),
			PaypalEmail: c.PostForm("paypal_email"),
		},
		ImageName: imageName,
		ImageData: imageData,
	})
	if err != nil {
		helpers.RespondError(c, "RegisterHandler", err)
		return
	}

	if err := h.setSession(c, registered); err != nil {
		helpers.RespondError(c, "RegisterHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusCreated, registered, "user registered successfully")
	helpers.LogSuccess("RegisterHandler", "user registered successfully", map[string]any{
		"user_id": registered.UserID,
		"role":    registered.Role,
	})
}

// LoginHandler handles POST /users/login
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	account, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		helpers.RespondError(c, "LoginHandler", err)
		return
	}
	if err := h.setSession(c, account); err != nil {
		helpers.RespondError(c, "LoginHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, account, "login successful")
}

// ProfileHandler handles GET /users/me
func (h *UserHandler) ProfileHandler(c *gin.Context) {
	current, ok := helpers.CurrentUser(c)
	if !ok {
		helpers.RespondError(c, "ProfileHandler", auctionerrors.ErrInvalidToken)
		return
	}
	utils.JSONResponse(c, http.StatusOK, current, "profile retrieved successfully")
}

// LogoutHandler handles GET /users/logout
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	utils.JSONResponse(c, http.StatusOK, nil, "logout successful")
}

// LeaderboardHandler handles GET /users/leaderboard
func (h *UserHandler) LeaderboardHandler(c *gin.Context) {
	leaders, err := h.service.Leaderboard()
	if err != nil {
		helpers.RespondError(c, "LeaderboardHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, leaders, "leaderboard retrieved successfully")
}

// ForgotPasswordHandler handles POST /users/forgot-password
func (h *UserHandler) ForgotPasswordHandler(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ForgotPasswordHandler", err)
		return
	}
	if err := h.service.RequestPasswordReset(req.Email); err != nil {
		helpers.RespondError(c, "ForgotPasswordHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "if the email is registered, a reset code has been sent")
}

// ResetPasswordHandler handles POST /users/reset-password
func (h *UserHandler) ResetPasswordHandler(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "ResetPasswordHandler", err)
		return
	}
	if err := h.service.ResetPassword(req.Email, req.OTP, req.NewPassword); err != nil {
		helpers.RespondError(c, "ResetPasswordHandler", err)
		return
	}
	utils.JSONResponse(c, http.StatusOK, nil, "password reset successfully")
}
