package repository

import (
	"time"

	model "auction-platform/internal/models"
)

// BalanceDelta is an atomic increment applied to a user's ledger fields.
// Negative values subtract (used by republish to reverse a prior win).
type BalanceDelta struct {
	MoneySpent       float64
	AuctionWon       int
	UnpaidCommission float64
}

// Store is the durable record store for the auction platform.
//
// The operations that back cross-request invariants are atomic as a unit:
// RecordBid commits the time-window check, the current-bid comparison, the
// bid insert and the snapshot append together; ClaimCommission is a
// conditional false->true flip; AdjustBalances and SettleCommission are
// atomic increments, never read-modify-write in the caller.
type Store interface {
	// Users
	CreateUser(u model.User) error
	GetUser(id string) (model.User, error)
	GetUserByEmail(email string) (model.User, error)
	UpdateUserPassword(id, passwordHash string) error
	AdjustBalances(id string, d BalanceDelta) (model.User, error)
	ZeroUnpaidCommission(id string) (model.User, error)
	// SettleCommission decrements the user's unpaid commission by amount,
	// clamping the balance at zero when amount exceeds what is owed.
	SettleCommission(id string, amount float64) (model.User, error)
	// ListBigSpenders returns users with MoneySpent > 0, highest first.
	ListBigSpenders() ([]model.User, error)

	// Auctions
	CreateAuction(a model.Auction) error
	GetAuction(id string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)
	ListAuctionsByOwner(ownerID string) ([]model.Auction, error)
	// ActiveAuctionExists reports whether the owner has an auction whose
	// end time is after now.
	ActiveAuctionExists(ownerID string, now time.Time) (bool, error)
	// ListExpiredUnsettled returns auctions past their end time that have
	// not had commission calculated yet.
	ListExpiredUnsettled(now time.Time) ([]model.Auction, error)
	DeleteAuction(id string) error
	// RecordBid accepts the bid iff the auction exists, now is inside
	// [StartTime, EndTime), and the amount strictly exceeds the recorded
	// current bid (and meets the starting bid when no bid exists yet).
	// On acceptance the bid record, the embedded snapshot and the new
	// current bid are committed together. Returns the updated auction.
	RecordBid(bid model.Bid, now time.Time) (model.Auction, error)
	// ClaimCommission flips CommissionCalculated false -> true.
	// It reports false when the flag was already set, which makes the
	// closing sweep idempotent and a concurrent duplicate run a no-op.
	ClaimCommission(auctionID string) (bool, error)
	SetHighestBidder(auctionID, bidderID string) error
	// ResetAuction clears bids, current bid, highest bidder and the
	// commission flag, installs the new window, and deletes the
	// auction's bid records. Returns the updated auction.
	ResetAuction(id string, start, end time.Time) (model.Auction, error)

	// Bids
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	// FindBidByAmount returns a bid on the auction with the exact amount;
	// auctionerrors.ErrNoBids when there is none.
	FindBidByAmount(auctionID string, amount float64) (model.Bid, error)

	// Payment proofs
	CreateProof(p model.PaymentProof) error
	GetProof(id string) (model.PaymentProof, error)
	ListProofs() ([]model.PaymentProof, error)
	ListProofsByStatus(status model.ProofStatus) ([]model.PaymentProof, error)
	UpdateProof(id string, status model.ProofStatus, amount float64) (model.PaymentProof, error)
	DeleteProof(id string) error

	// Commission ledger
	AppendCommissionRecord(r model.CommissionRecord) error
	ListCommissionRecords() ([]model.CommissionRecord, error)
}
