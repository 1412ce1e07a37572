package server

import (
	model "auction-platform/internal/models"
	adminhandler "auction-platform/services/admin/handler"
	auctionhandler "auction-platform/services/auction/handler"
	biddinghandler "auction-platform/services/bidding/handler"
	commissionhandler "auction-platform/services/commission/handler"
	userhandler "auction-platform/services/user/handler"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps carries everything the router wires together.
type Deps struct {
	Users       userhandler.UserServiceInterface
	Auctions    auctionhandler.AuctionServiceInterface
	Bidding     biddinghandler.BiddingServiceInterface
	Commissions interface {
		commissionhandler.CommissionServiceInterface
		adminhandler.CommissionReviewInterface
	}
	Resolver   TokenResolver
	Loader     UserLoader
	CookieName string
	CookieTTL  int // seconds
	UploadDir  string
}

// SetupRouter configures all Gin routes for the application.
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New() // full control over middleware and logging

	router.Use(gin.Recovery())
	router.Use(RequestLoggerMiddleware)

	userHandler := userhandler.NewUserHandler(d.Users, d.CookieName, d.CookieTTL)
	auctionHandler := auctionhandler.NewAuctionHandler(d.Auctions)
	biddingHandler := biddinghandler.NewBiddingHandler(d.Bidding)
	commissionHandler := commissionhandler.NewCommissionHandler(d.Commissions)
	adminHandler := adminhandler.NewAdminHandler(d.Commissions, d.Auctions)

	authed := AuthMiddleware(d.Resolver, d.CookieName)

	api := router.Group("/api/v1")

	users := api.Group("/users")
	{
		users.POST("/register", userHandler.RegisterHandler)
		users.POST("/login", userHandler.LoginHandler)
		users.GET("/me", authed, userHandler.ProfileHandler)
		users.GET("/logout", authed, userHandler.LogoutHandler)
		users.GET("/leaderboard", userHandler.LeaderboardHandler)
		users.POST("/forgot-password", userHandler.ForgotPasswordHandler)
		users.POST("/reset-password", userHandler.ResetPasswordHandler)
	}

	auctions := api.Group("/auctions")
	{
		auctions.GET("", auctionHandler.ListHandler)
		auctions.POST("", authed, RequireRole(model.RoleAuctioneer),
			CommissionGateMiddleware(d.Loader), auctionHandler.CreateHandler)
		auctions.GET("/my", authed, RequireRole(model.RoleAuctioneer), auctionHandler.MineHandler)
		auctions.GET("/:id", authed, auctionHandler.DetailHandler)
		auctions.DELETE("/:id", authed, RequireRole(model.RoleAuctioneer), auctionHandler.DeleteHandler)
		auctions.PUT("/:id/republish", authed, RequireRole(model.RoleAuctioneer), auctionHandler.RepublishHandler)

		auctions.POST("/:id/bids", authed, RequireRole(model.RoleBidder), biddingHandler.PlaceBidHandler)
		auctions.GET("/:id/bids", authed, biddingHandler.GetBidsHandler)
	}

	commissions := api.Group("/commissions")
	{
		commissions.POST("/proof", authed, RequireRole(model.RoleAuctioneer), commissionHandler.SubmitProofHandler)
	}

	admin := api.Group("/admin", authed, RequireRole(model.RoleSuperAdmin))
	{
		admin.GET("/payment-proofs", adminHandler.ListProofsHandler)
		admin.GET("/payment-proofs/:id", adminHandler.ProofDetailHandler)
		admin.PUT("/payment-proofs/:id", adminHandler.ReviewProofHandler)
		admin.DELETE("/payment-proofs/:id", adminHandler.DeleteProofHandler)
		admin.DELETE("/auctions/:id", adminHandler.DeleteAuctionHandler)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if d.UploadDir != "" {
		router.Static("/uploads", d.UploadDir)
	}

	return router
}
