package automation

import (
	"errors"
	"math"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/metrics"
	"auction-platform/internal/models"
	"auction-platform/internal/notify"
	"auction-platform/internal/repository"
	"auction-platform/utils"

	"github.com/shopspring/decimal"
)

// ClosingSweep finds auctions past their end time that have not been
// settled, determines the winner, charges commission, and emails the
// winner. Each auction is processed independently; one failure never
// aborts the rest.
type ClosingSweep struct {
	store    repository.Store
	notifier notify.Notifier
	rate     decimal.Decimal
}

// NewClosingSweep creates the sweep with the platform commission rate
// (0.05 charges 5% of the winning bid).
func NewClosingSweep(store repository.Store, notifier notify.Notifier, rate float64) *ClosingSweep {
	return &ClosingSweep{
		store:    store,
		notifier: notifier,
		rate:     decimal.NewFromFloat(rate),
	}
}

// Name identifies the sweep in logs and metrics.
func (c *ClosingSweep) Name() string { return "auction_closing" }

// RunOnce processes every expired, unsettled auction against the single
// timestamp now.
func (c *ClosingSweep) RunOnce(now time.Time) {
	expired, err := c.store.ListExpiredUnsettled(now)
	if err != nil {
		metrics.SweepErrors.WithLabelValues(c.Name()).Inc()
		utils.Error("closing sweep: query expired auctions", map[string]any{"error": err.Error()})
		return
	}

	for _, auction := range expired {
		if err := c.settle(auction); err != nil {
			metrics.SweepErrors.WithLabelValues(c.Name()).Inc()
			utils.Error("closing sweep: settle auction", map[string]any{
				"auction_id": auction.AuctionID,
				"error":      err.Error(),
			})
		}
	}
}

// settle closes one auction. The commission flag is written before the
// financial and notification steps: re-processing on the next tick is
// traded away for possible partial processing if a later step fails.
func (c *ClosingSweep) settle(auction models.Auction) error {
	commission := c.commissionFor(auction.CurrentBid)

	claimed, err := c.store.ClaimCommission(auction.AuctionID)
	if err != nil {
		return err
	}
	if !claimed {
		// Already settled by an earlier run.
		return nil
	}

	winningBid, err := c.store.FindBidByAmount(auction.AuctionID, auction.CurrentBid)
	if err != nil {
		if errors.Is(err, auctionerrors.ErrNoBids) {
			// No bids were ever placed: settled with no winner, no
			// financial side effects, no notification.
			utils.Info("closing sweep: auction ended without bids", map[string]any{
				"auction_id": auction.AuctionID,
			})
			return nil
		}
		return err
	}

	auctioneer, err := c.store.GetUser(auction.CreatedBy)
	if err != nil {
		// Broken owner reference; skip financial updates for this auction.
		utils.Error("closing sweep: auctioneer not found", map[string]any{
			"auction_id":    auction.AuctionID,
			"auctioneer_id": auction.CreatedBy,
		})
		return nil
	}

	if err := c.store.SetHighestBidder(auction.AuctionID, winningBid.BidderID); err != nil {
		return err
	}

	bidder, err := c.store.AdjustBalances(winningBid.BidderID, repository.BalanceDelta{
		MoneySpent: winningBid.Amount,
		AuctionWon: 1,
	})
	if err != nil {
		return err
	}

	if _, err := c.store.AdjustBalances(auctioneer.UserID, repository.BalanceDelta{
		UnpaidCommission: commission,
	}); err != nil {
		return err
	}

	metrics.AuctionsSettled.Inc()
	utils.Info("closing sweep: auction settled", map[string]any{
		"auction_id":  auction.AuctionID,
		"winner_id":   winningBid.BidderID,
		"winning_bid": winningBid.Amount,
		"commission":  commission,
	})

	subject, text, html := notify.WonAuctionMessage(
		bidder.UserName, auction.Title, winningBid.Amount, auction.EndTime,
		auctioneer.Email, commission)
	if err := c.notifier.Send(bidder.Email, subject, text, html); err != nil {
		// Best effort; the settlement stands either way.
		utils.Error("closing sweep: winner email failed", map[string]any{
			"auction_id": auction.AuctionID,
			"bidder_id":  winningBid.BidderID,
			"error":      err.Error(),
		})
	}
	return nil
}

// commissionFor returns ceil(amount * rate) as charged to the auctioneer.
func (c *ClosingSweep) commissionFor(amount float64) float64 {
	raw, _ := decimal.NewFromFloat(amount).Mul(c.rate).Float64()
	return math.Ceil(raw)
}
