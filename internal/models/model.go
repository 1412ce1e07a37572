package models

import "time"

// Role is the closed set of account roles.
type Role string

const (
	RoleAuctioneer Role = "Auctioneer"
	RoleBidder     Role = "Bidder"
	RoleSuperAdmin Role = "SuperAdmin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAuctioneer, RoleBidder, RoleSuperAdmin:
		return true
	}
	return false
}

// ProofStatus is the review state of a payment proof.
type ProofStatus string

const (
	ProofPending  ProofStatus = "Pending"
	ProofApproved ProofStatus = "Approved"
	ProofRejected ProofStatus = "Rejected"
	ProofSettled  ProofStatus = "Settled"
)

// Valid reports whether s is a known proof status.
func (s ProofStatus) Valid() bool {
	switch s {
	case ProofPending, ProofApproved, ProofRejected, ProofSettled:
		return true
	}
	return false
}

// Image is a stored object reference returned by the object store.
type Image struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// BankTransfer holds an auctioneer's bank payout details.
type BankTransfer struct {
	AccountNumber string `json:"bank_account_number"`
	AccountName   string `json:"bank_account_name"`
	BankName      string `json:"bank_name"`
}

// PaymentMethods groups the payout channels an auctioneer registers with.
type PaymentMethods struct {
	BankTransfer BankTransfer `json:"bank_transfer"`
	GooglePayNo  string       `json:"google_pay_account_number"`
	PaypalEmail  string       `json:"paypal_email"`
}

// User represents a participant in the auction platform.
// UnpaidCommission is never negative; it is incremented by the auction
// closing sweep and decremented only by the commission reconciliation sweep.
type User struct {
	UserID           string         `json:"user_id"`
	UserName         string         `json:"user_name"`
	Email            string         `json:"email"`
	PasswordHash     string         `json:"-"`
	Phone            string         `json:"phone"`
	Address          string         `json:"address"`
	ProfileImage     Image          `json:"profile_image"`
	PaymentMethods   PaymentMethods `json:"payment_methods"`
	Role             Role           `json:"role"`
	UnpaidCommission float64        `json:"unpaid_commission"`
	AuctionWon       int            `json:"auction_won"`
	MoneySpent       float64        `json:"money_spent"`
	CreatedAt        time.Time      `json:"created_at"`
}

// BidSnapshot is the denormalized bid entry embedded on an auction.
// The Bid collection is the source of truth; snapshots are written in the
// same atomic store operation as the bid record, so they cannot diverge.
type BidSnapshot struct {
	BidderID     string  `json:"bidder_id"`
	UserName     string  `json:"user_name"`
	ProfileImage string  `json:"profile_image"`
	Amount       float64 `json:"amount"`
}

// Auction represents an item listed for sale.
// CurrentBid is monotonically non-decreasing while the auction is open.
// CommissionCalculated flips false -> true exactly once per published
// window, written by the closing sweep before any financial side effects.
type Auction struct {
	AuctionID            string        `json:"auction_id"`
	Title                string        `json:"title"`
	Description          string        `json:"description"`
	Category             string        `json:"category"`
	Condition            string        `json:"condition"`
	StartingBid          float64       `json:"starting_bid"`
	CurrentBid           float64       `json:"current_bid"`
	StartTime            time.Time     `json:"start_time"`
	EndTime              time.Time     `json:"end_time"`
	Image                Image         `json:"image"`
	CreatedBy            string        `json:"created_by"`
	Bids                 []BidSnapshot `json:"bids"`
	HighestBidder        string        `json:"highest_bidder,omitempty"`
	CommissionCalculated bool          `json:"commission_calculated"`
	CreatedAt            time.Time     `json:"created_at"`
}

// Open reports whether the auction accepts bids at the given instant.
func (a Auction) Open(now time.Time) bool {
	return !now.Before(a.StartTime) && now.Before(a.EndTime)
}

// Ended reports whether the auction's bidding window has passed.
func (a Auction) Ended(now time.Time) bool {
	return !now.Before(a.EndTime)
}

// Bid is a single bid event. Bids are append-only; they are deleted only
// en masse when an auction is republished.
type Bid struct {
	BidID        string    `json:"bid_id"`
	AuctionID    string    `json:"auction_id"`
	BidderID     string    `json:"bidder_id"`
	UserName     string    `json:"user_name"`
	ProfileImage string    `json:"profile_image"`
	Amount       float64   `json:"amount"`
	CreatedAt    time.Time `json:"created_at"`
}

// PaymentProof is a user's claim of having paid owed commission.
// Created Pending, moved to Approved or Rejected by admin review, and moved
// to Settled only by the reconciliation sweep.
type PaymentProof struct {
	ProofID   string      `json:"proof_id"`
	UserID    string      `json:"user_id"`
	Proof     Image       `json:"proof"`
	Amount    float64     `json:"amount"`
	Comment   string      `json:"comment"`
	Status    ProofStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// CommissionRecord is an immutable ledger entry for a settlement event.
type CommissionRecord struct {
	RecordID  string    `json:"record_id"`
	UserID    string    `json:"user_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
