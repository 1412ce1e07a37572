package bidding

import (
	"errors"
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/metrics"
	"auction-platform/internal/models"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// BiddingService validates and records bids against open auctions.
type BiddingService struct {
	store repository.Store
	now   func() time.Time
}

// NewBiddingService creates a new BiddingService instance.
func NewBiddingService(store repository.Store) *BiddingService {
	return &BiddingService{store: store, now: time.Now}
}

// WithClock overrides the service clock. For tests.
func (s *BiddingService) WithClock(now func() time.Time) *BiddingService {
	s.now = now
	return s
}

// PlaceBid accepts the bid iff the auction exists, the request time is
// inside the bidding window, and the amount strictly exceeds the recorded
// current bid. A single timestamp is taken per request; the window check
// and the conditional current-bid update are committed as one atomic store
// operation, so two concurrent bids cannot both win the comparison.
// Returns the updated auction state.
func (s *BiddingService) PlaceBid(auctionID string, bidder models.User, amount float64) (models.Auction, error) {
	if auctionID == "" || bidder.UserID == "" {
		return models.Auction{}, fmt.Errorf("service: %w: missing auction or bidder id", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w: non-positive bid amount", auctionerrors.ErrInvalidInput)
	}

	now := s.now().UTC()
	bid := models.Bid{
		BidID:        utils.GenerateID(),
		AuctionID:    auctionID,
		BidderID:     bidder.UserID,
		UserName:     bidder.UserName,
		ProfileImage: bidder.ProfileImage.URL,
		Amount:       amount,
		CreatedAt:    now,
	}

	auction, err := s.store.RecordBid(bid, now)
	if err != nil {
		metrics.BidsRejected.WithLabelValues(rejectReason(err)).Inc()
		return models.Auction{}, fmt.Errorf("service: place bid on %s by %s: %w", auctionID, bidder.UserID, err)
	}

	metrics.BidsAccepted.Inc()
	utils.Info("bid accepted", map[string]any{
		"auction_id": auctionID,
		"bidder_id":  bidder.UserID,
		"amount":     amount,
	})
	return auction, nil
}

// GetBidsForAuction returns the auction's bid history in the order the
// bids were accepted.
func (s *BiddingService) GetBidsForAuction(auctionID string) ([]models.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w: empty auction id", auctionerrors.ErrInvalidInput)
	}
	bids, err := s.store.GetBidsForAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: get bids for %s: %w", auctionID, err)
	}
	return bids, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, auctionerrors.ErrBidTooLow):
		return "too_low"
	case errors.Is(err, auctionerrors.ErrAuctionClosed):
		return "closed"
	case errors.Is(err, auctionerrors.ErrAuctionNotStarted):
		return "not_started"
	case errors.Is(err, auctionerrors.ErrAuctionNotFound):
		return "not_found"
	default:
		return "error"
	}
}
