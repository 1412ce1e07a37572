package main

import (
	"context"
	"fmt"
	"os"

	auction "auction-platform/internal/auctionService"
	"auction-platform/internal/automation"
	bidding "auction-platform/internal/biddingService"
	commission "auction-platform/internal/commissionService"
	"auction-platform/internal/config"
	"auction-platform/internal/notify"
	"auction-platform/internal/objectstore"
	"auction-platform/internal/repository"
	"auction-platform/internal/server"
	user "auction-platform/internal/userService"
)

func main() {

	cfg, err := config.Load(os.Getenv("AUCTION_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	store, closeStore, err := openStore(cfg.Storage)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	images, err := objectstore.NewDiskStore(cfg.Storage.UploadDir, cfg.Storage.PublicBase)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open upload dir: %v\n", err)
		os.Exit(1)
	}

	notifier := notify.FromConfig(cfg.SMTP)

	userSvc := user.NewUserService(store, images, notifier,
		cfg.Auth.JWTSecret, cfg.JWTExpiry(), cfg.OTPExpiry())
	auctionSvc := auction.NewAuctionService(store, images)
	biddingSvc := bidding.NewBiddingService(store)
	commissionSvc := commission.NewCommissionService(store, images)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	closing := automation.NewSweeper(
		automation.NewClosingSweep(store, notifier, cfg.Sweep.CommissionRate),
		cfg.SweepInterval())
	reconciliation := automation.NewSweeper(
		automation.NewReconciliationSweep(store, notifier),
		cfg.SweepInterval())
	go closing.Start(ctx)
	go reconciliation.Start(ctx)

	router := server.SetupRouter(server.Deps{
		Users:       userSvc,
		Auctions:    auctionSvc,
		Bidding:     biddingSvc,
		Commissions: commissionSvc,
		Resolver:    userSvc,
		Loader:      userSvc,
		CookieName:  cfg.Auth.CookieName,
		CookieTTL:   int(cfg.JWTExpiry().Seconds()),
		UploadDir:   cfg.Storage.UploadDir,
	})

	fmt.Printf("Starting auction server on %s...\n", cfg.Server.Addr)
	if err := router.Run(cfg.Server.Addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}

// openStore picks the record store backend from config.
func openStore(cfg config.Storage) (repository.Store, func(), error) {
	switch cfg.Backend {
	case "sqlite":
		s, err := repository.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { _ = s.Close() }, nil
	case "memory", "":
		return repository.NewMemoryStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
