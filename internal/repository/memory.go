package repository

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
)

// MemoryStore is a concurrency-safe in-memory implementation of Store.
// Every conditional operation runs under a single lock hold, so the
// check and the write cannot interleave with another request's sequence.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]model.User
	auctions map[string]model.Auction
	bids     map[string][]model.Bid // key: auctionID
	proofs   map[string]model.PaymentProof
	ledger   []model.CommissionRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]model.User),
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
		proofs:   make(map[string]model.PaymentProof),
	}
}

// ---- Users ----

func (s *MemoryStore) CreateUser(u model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return fmt.Errorf("create user %s: %w", u.Email, auctionerrors.ErrEmailTaken)
		}
	}
	s.users[u.UserID] = u
	return nil
}

func (s *MemoryStore) GetUser(id string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	return u, nil
}

func (s *MemoryStore) GetUserByEmail(email string) (model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, fmt.Errorf("get user by email %s: %w", email, auctionerrors.ErrUserNotFound)
}

func (s *MemoryStore) UpdateUserPassword(id, passwordHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("update password for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	u.PasswordHash = passwordHash
	s.users[id] = u
	return nil
}

func (s *MemoryStore) AdjustBalances(id string, d BalanceDelta) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("adjust balances for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	u.MoneySpent += d.MoneySpent
	u.AuctionWon += d.AuctionWon
	u.UnpaidCommission += d.UnpaidCommission
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) ZeroUnpaidCommission(id string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("zero unpaid commission for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	u.UnpaidCommission = 0
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) SettleCommission(id string, amount float64) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return model.User{}, fmt.Errorf("settle commission for %s: %w", id, auctionerrors.ErrUserNotFound)
	}
	if u.UnpaidCommission >= amount {
		u.UnpaidCommission -= amount
	} else {
		u.UnpaidCommission = 0
	}
	s.users[id] = u
	return u, nil
}

func (s *MemoryStore) ListBigSpenders() ([]model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]model.User, 0)
	for _, u := range s.users {
		if u.MoneySpent > 0 {
			users = append(users, u)
		}
	}
	sort.Slice(users, func(i, j int) bool { return users[i].MoneySpent > users[j].MoneySpent })
	return users, nil
}

// ---- Auctions ----

func (s *MemoryStore) CreateAuction(a model.Auction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.auctions[a.AuctionID] = cloneAuction(a)
	return nil
}

func (s *MemoryStore) GetAuction(id string) (model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

func (s *MemoryStore) ListAuctions() ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(s.auctions))
	for _, a := range s.auctions {
		auctions = append(auctions, cloneAuction(a))
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

func (s *MemoryStore) ListAuctionsByOwner(ownerID string) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.CreatedBy == ownerID {
			auctions = append(auctions, cloneAuction(a))
		}
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].CreatedAt.Before(auctions[j].CreatedAt) })
	return auctions, nil
}

func (s *MemoryStore) ActiveAuctionExists(ownerID string, now time.Time) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.auctions {
		if a.CreatedBy == ownerID && a.EndTime.After(now) {
			return true, nil
		}
	}
	return false, nil
}

func (s *MemoryStore) ListExpiredUnsettled(now time.Time) ([]model.Auction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	auctions := make([]model.Auction, 0)
	for _, a := range s.auctions {
		if a.EndTime.Before(now) && !a.CommissionCalculated {
			auctions = append(auctions, cloneAuction(a))
		}
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].EndTime.Before(auctions[j].EndTime) })
	return auctions, nil
}

func (s *MemoryStore) DeleteAuction(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.auctions[id]; !ok {
		return fmt.Errorf("delete auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	delete(s.auctions, id)
	delete(s.bids, id)
	return nil
}

func (s *MemoryStore) RecordBid(bid model.Bid, now time.Time) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[bid.AuctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotFound)
	}
	if now.Before(a.StartTime) {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, auctionerrors.ErrAuctionNotStarted)
	}
	if !now.Before(a.EndTime) {
		return model.Auction{}, fmt.Errorf("record bid on %s: %w", bid.AuctionID, auctionerrors.ErrAuctionClosed)
	}
	floor := a.CurrentBid
	if floor == 0 && bid.Amount < a.StartingBid {
		return model.Auction{}, fmt.Errorf("record bid on %s: below starting bid %.2f: %w",
			bid.AuctionID, a.StartingBid, auctionerrors.ErrBidTooLow)
	}
	if bid.Amount <= floor {
		return model.Auction{}, fmt.Errorf("record bid on %s: current bid is %.2f: %w",
			bid.AuctionID, floor, auctionerrors.ErrBidTooLow)
	}

	a.CurrentBid = bid.Amount
	a.Bids = append(a.Bids, model.BidSnapshot{
		BidderID:     bid.BidderID,
		UserName:     bid.UserName,
		ProfileImage: bid.ProfileImage,
		Amount:       bid.Amount,
	})
	s.auctions[a.AuctionID] = a
	s.bids[a.AuctionID] = append(s.bids[a.AuctionID], bid)
	return cloneAuction(a), nil
}

func (s *MemoryStore) ClaimCommission(auctionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return false, fmt.Errorf("claim commission for %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	if a.CommissionCalculated {
		return false, nil
	}
	a.CommissionCalculated = true
	s.auctions[auctionID] = a
	return true, nil
}

func (s *MemoryStore) SetHighestBidder(auctionID, bidderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[auctionID]
	if !ok {
		return fmt.Errorf("set highest bidder for %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	a.HighestBidder = bidderID
	s.auctions[auctionID] = a
	return nil
}

func (s *MemoryStore) ResetAuction(id string, start, end time.Time) (model.Auction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.auctions[id]
	if !ok {
		return model.Auction{}, fmt.Errorf("reset auction %s: %w", id, auctionerrors.ErrAuctionNotFound)
	}
	a.StartTime = start
	a.EndTime = end
	a.Bids = nil
	a.CurrentBid = 0
	a.HighestBidder = ""
	a.CommissionCalculated = false
	s.auctions[id] = a
	delete(s.bids, id)
	return cloneAuction(a), nil
}

// ---- Bids ----

func (s *MemoryStore) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bids, ok := s.bids[auctionID]
	if !ok || len(bids) == 0 {
		return nil, fmt.Errorf("get bids for %s: %w", auctionID, auctionerrors.ErrNoBids)
	}
	return append([]model.Bid(nil), bids...), nil
}

func (s *MemoryStore) FindBidByAmount(auctionID string, amount float64) (model.Bid, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.bids[auctionID] {
		if b.Amount == amount {
			return b, nil
		}
	}
	return model.Bid{}, fmt.Errorf("find bid of %.2f on %s: %w", amount, auctionID, auctionerrors.ErrNoBids)
}

// ---- Payment proofs ----

func (s *MemoryStore) CreateProof(p model.PaymentProof) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.proofs[p.ProofID] = p
	return nil
}

func (s *MemoryStore) GetProof(id string) (model.PaymentProof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.proofs[id]
	if !ok {
		return model.PaymentProof{}, fmt.Errorf("get proof %s: %w", id, auctionerrors.ErrProofNotFound)
	}
	return p, nil
}

func (s *MemoryStore) ListProofs() ([]model.PaymentProof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proofs := make([]model.PaymentProof, 0, len(s.proofs))
	for _, p := range s.proofs {
		proofs = append(proofs, p)
	}
	sort.Slice(proofs, func(i, j int) bool { return proofs[i].CreatedAt.Before(proofs[j].CreatedAt) })
	return proofs, nil
}

func (s *MemoryStore) ListProofsByStatus(status model.ProofStatus) ([]model.PaymentProof, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	proofs := make([]model.PaymentProof, 0)
	for _, p := range s.proofs {
		if p.Status == status {
			proofs = append(proofs, p)
		}
	}
	sort.Slice(proofs, func(i, j int) bool { return proofs[i].CreatedAt.Before(proofs[j].CreatedAt) })
	return proofs, nil
}

func (s *MemoryStore) UpdateProof(id string, status model.ProofStatus, amount float64) (model.PaymentProof, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.proofs[id]
	if !ok {
		return model.PaymentProof{}, fmt.Errorf("update proof %s: %w", id, auctionerrors.ErrProofNotFound)
	}
	p.Status = status
	p.Amount = amount
	s.proofs[id] = p
	return p, nil
}

func (s *MemoryStore) DeleteProof(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.proofs[id]; !ok {
		return fmt.Errorf("delete proof %s: %w", id, auctionerrors.ErrProofNotFound)
	}
	delete(s.proofs, id)
	return nil
}

// ---- Commission ledger ----

func (s *MemoryStore) AppendCommissionRecord(r model.CommissionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ledger = append(s.ledger, r)
	return nil
}

func (s *MemoryStore) ListCommissionRecords() ([]model.CommissionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.CommissionRecord(nil), s.ledger...), nil
}

// cloneAuction copies the auction so callers never alias the stored
// snapshot slice.
func cloneAuction(a model.Auction) model.Auction {
	a.Bids = append([]model.BidSnapshot(nil), a.Bids...)
	return a
}
