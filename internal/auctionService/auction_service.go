// Package auction implements the auction lifecycle: create, list, detail,
// delete, republish.
package auction

import (
	"fmt"
	"sort"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
	"auction-platform/internal/objectstore"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// CreateParams carries the fields for a new auction listing.
type CreateParams struct {
	Title       string
	Description string
	Category    string
	Condition   string
	StartingBid float64
	StartTime   time.Time
	EndTime     time.Time
	ImageName   string
	ImageData   []byte
}

// AuctionService implements the lifecycle operations over the record store.
type AuctionService struct {
	store  repository.Store
	images objectstore.Store
	now    func() time.Time
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(store repository.Store, images objectstore.Store) *AuctionService {
	return &AuctionService{store: store, images: images, now: time.Now}
}

// WithClock overrides the service clock. For tests.
func (s *AuctionService) WithClock(now func() time.Time) *AuctionService {
	s.now = now
	return s
}

// Create lists a new auction for the auctioneer. Creation is rejected when
// the window is not a future start < end pair, when the auctioneer already
// has an active auction, or when they owe commission.
func (s *AuctionService) Create(auctioneer models.User, p CreateParams) (models.Auction, error) {
	if p.Title == "" || p.Description == "" || p.Category == "" || p.Condition == "" {
		return models.Auction{}, fmt.Errorf("service: %w: missing auction details", auctionerrors.ErrInvalidInput)
	}
	if p.StartingBid <= 0 {
		return models.Auction{}, fmt.Errorf("service: %w: starting bid must be positive", auctionerrors.ErrInvalidInput)
	}
	if len(p.ImageData) == 0 {
		return models.Auction{}, fmt.Errorf("service: %w: auction image required", auctionerrors.ErrInvalidInput)
	}

	now := s.now().UTC()
	if err := validateWindow(p.StartTime, p.EndTime, now); err != nil {
		return models.Auction{}, err
	}

	if auctioneer.UnpaidCommission > 0 {
		return models.Auction{}, fmt.Errorf("service: create auction for %s: %w",
			auctioneer.UserID, auctionerrors.ErrUnpaidCommission)
	}

	active, err := s.store.ActiveAuctionExists(auctioneer.UserID, now)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction for %s: %w", auctioneer.UserID, err)
	}
	if active {
		return models.Auction{}, fmt.Errorf("service: create auction for %s: %w",
			auctioneer.UserID, auctionerrors.ErrDuplicateActiveAuction)
	}

	img, err := s.images.Save(p.ImageName, p.ImageData)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction for %s: %w", auctioneer.UserID, err)
	}

	a := models.Auction{
		AuctionID:   utils.GenerateID(),
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Condition:   p.Condition,
		StartingBid: p.StartingBid,
		StartTime:   p.StartTime.UTC(),
		EndTime:     p.EndTime.UTC(),
		Image:       models.Image{ID: img.ID, URL: img.URL},
		CreatedBy:   auctioneer.UserID,
		CreatedAt:   now,
	}
	if err := s.store.CreateAuction(a); err != nil {
		return models.Auction{}, fmt.Errorf("service: create auction for %s: %w", auctioneer.UserID, err)
	}

	utils.Info("auction created", map[string]any{
		"auction_id": a.AuctionID,
		"created_by": a.CreatedBy,
		"start_time": a.StartTime,
		"end_time":   a.EndTime,
	})
	return a, nil
}

// List returns every auction.
func (s *AuctionService) List() ([]models.Auction, error) {
	auctions, err := s.store.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: list auctions: %w", err)
	}
	return auctions, nil
}

// Detail returns the auction with its embedded bid snapshots sorted by
// amount, highest first.
func (s *AuctionService) Detail(id string) (models.Auction, error) {
	if id == "" {
		return models.Auction{}, fmt.Errorf("service: %w: empty auction id", auctionerrors.ErrInvalidInput)
	}
	a, err := s.store.GetAuction(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: auction detail %s: %w", id, err)
	}
	sort.Slice(a.Bids, func(i, j int) bool { return a.Bids[i].Amount > a.Bids[j].Amount })
	return a, nil
}

// Mine returns the auctioneer's own auctions.
func (s *AuctionService) Mine(ownerID string) ([]models.Auction, error) {
	auctions, err := s.store.ListAuctionsByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("service: list auctions for %s: %w", ownerID, err)
	}
	return auctions, nil
}

// Delete removes an auction. Only the owner (or a super admin, via the
// admin surface) may delete it.
func (s *AuctionService) Delete(id, requesterID string) error {
	a, err := s.store.GetAuction(id)
	if err != nil {
		return fmt.Errorf("service: delete auction %s: %w", id, err)
	}
	if requesterID != "" && a.CreatedBy != requesterID {
		return fmt.Errorf("service: delete auction %s: %w", id, auctionerrors.ErrForbidden)
	}
	if err := s.store.DeleteAuction(id); err != nil {
		return fmt.Errorf("service: delete auction %s: %w", id, err)
	}
	utils.Info("auction deleted", map[string]any{"auction_id": id})
	return nil
}

// Republish resets a fully closed auction to a fresh open state with a new
// future window. Any prior winner's accrued moneySpent and auctionWon are
// reversed first, and the auctioneer's unpaid commission is zeroed.
func (s *AuctionService) Republish(id string, auctioneer models.User, start, end time.Time) (models.Auction, error) {
	a, err := s.store.GetAuction(id)
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: republish %s: %w", id, err)
	}
	if a.CreatedBy != auctioneer.UserID {
		return models.Auction{}, fmt.Errorf("service: republish %s: %w", id, auctionerrors.ErrForbidden)
	}

	now := s.now().UTC()
	if !a.Ended(now) {
		return models.Auction{}, fmt.Errorf("service: republish %s: %w", id, auctionerrors.ErrAuctionActive)
	}
	if err := validateWindow(start, end, now); err != nil {
		return models.Auction{}, err
	}

	if a.HighestBidder != "" {
		_, err := s.store.AdjustBalances(a.HighestBidder, repository.BalanceDelta{
			MoneySpent: -a.CurrentBid,
			AuctionWon: -1,
		})
		if err != nil {
			// A missing winner account must not block the reset.
			utils.Warn("republish: prior winner not adjustable", map[string]any{
				"auction_id": id,
				"bidder_id":  a.HighestBidder,
				"error":      err.Error(),
			})
		}
	}

	updated, err := s.store.ResetAuction(id, start.UTC(), end.UTC())
	if err != nil {
		return models.Auction{}, fmt.Errorf("service: republish %s: %w", id, err)
	}

	if _, err := s.store.ZeroUnpaidCommission(auctioneer.UserID); err != nil {
		utils.Warn("republish: zero unpaid commission failed", map[string]any{
			"auction_id":    id,
			"auctioneer_id": auctioneer.UserID,
			"error":         err.Error(),
		})
	}

	utils.Info("auction republished", map[string]any{
		"auction_id": id,
		"start_time": updated.StartTime,
		"end_time":   updated.EndTime,
	})
	return updated, nil
}

func validateWindow(start, end, now time.Time) error {
	if start.IsZero() || end.IsZero() {
		return fmt.Errorf("service: %w: start and end time are required", auctionerrors.ErrInvalidInput)
	}
	if !start.After(now) {
		return fmt.Errorf("service: %w: start time must be in the future", auctionerrors.ErrInvalidInput)
	}
	if !start.Before(end) {
		return fmt.Errorf("service: %w: start time must be before end time", auctionerrors.ErrInvalidInput)
	}
	return nil
}
