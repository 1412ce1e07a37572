package repository

import (
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"

	"github.com/stretchr/testify/require"
)

// storeFactories returns a fresh store per backend so every property is
// checked against both implementations.
func storeFactories() map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

// Helper to create a user
func newUser(id, email string, role model.Role) model.User {
	return model.User{
		UserID:       id,
		UserName:     fmt.Sprintf("user %s", id),
		Email:        email,
		PasswordHash: "hash",
		Phone:        "5551234567",
		Address:      "somewhere",
		Role:         role,
		CreatedAt:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Helper to create an auction open for bidding at `now`
func newAuction(id, owner string, startingBid float64, now time.Time) model.Auction {
	return model.Auction{
		AuctionID:   id,
		Title:       fmt.Sprintf("auction %s", id),
		Description: "test item",
		Category:    "Electronics",
		Condition:   "New",
		StartingBid: startingBid,
		StartTime:   now.Add(-time.Hour),
		EndTime:     now.Add(time.Hour),
		CreatedBy:   owner,
		CreatedAt:   now.Add(-2 * time.Hour),
	}
}

// Helper to create a bid
func newBid(bidID, auctionID, bidderID string, amount float64, createdAt time.Time) model.Bid {
	return model.Bid{
		BidID:     bidID,
		AuctionID: auctionID,
		BidderID:  bidderID,
		UserName:  fmt.Sprintf("user %s", bidderID),
		Amount:    amount,
		CreatedAt: createdAt,
	}
}

// Test RecordBid: window checks, starting-bid floor, strict monotonicity
func TestStore_RecordBid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateAuction(newAuction("a1", "owner1", 50, now)))

			pending := newAuction("a2", "owner1", 50, now)
			pending.StartTime = now.Add(time.Hour)
			pending.EndTime = now.Add(2 * time.Hour)
			require.NoError(t, store.CreateAuction(pending))

			closed := newAuction("a3", "owner1", 50, now)
			closed.StartTime = now.Add(-3 * time.Hour)
			closed.EndTime = now.Add(-time.Hour)
			require.NoError(t, store.CreateAuction(closed))

			tests := []struct {
				name    string
				bid     model.Bid
				wantErr error
			}{
				{name: "first_bid_below_starting", bid: newBid("b1", "a1", "u1", 40, now), wantErr: auctionerrors.ErrBidTooLow},
				{name: "first_bid_at_starting", bid: newBid("b2", "a1", "u1", 50, now)},
				{name: "bid_equal_to_current", bid: newBid("b3", "a1", "u2", 50, now), wantErr: auctionerrors.ErrBidTooLow},
				{name: "bid_below_current", bid: newBid("b4", "a1", "u2", 45, now), wantErr: auctionerrors.ErrBidTooLow},
				{name: "strictly_higher_bid", bid: newBid("b5", "a1", "u2", 75, now)},
				{name: "auction_not_started", bid: newBid("b6", "a2", "u1", 100, now), wantErr: auctionerrors.ErrAuctionNotStarted},
				{name: "auction_closed", bid: newBid("b7", "a3", "u1", 100, now), wantErr: auctionerrors.ErrAuctionClosed},
				{name: "unknown_auction", bid: newBid("b8", "aX", "u1", 100, now), wantErr: auctionerrors.ErrAuctionNotFound},
			}

			// Sequential on purpose: later cases depend on the floor the
			// earlier accepted bids establish.
			for _, tc := range tests {
				t.Run(tc.name, func(t *testing.T) {
					a, err := store.RecordBid(tc.bid, now)
					if tc.wantErr != nil {
						require.ErrorIs(t, err, tc.wantErr)
						return
					}
					require.NoError(t, err)
					require.Equal(t, tc.bid.Amount, a.CurrentBid)
				})
			}

			a, err := store.GetAuction("a1")
			require.NoError(t, err)
			require.Equal(t, 75.0, a.CurrentBid)
			require.Len(t, a.Bids, 2)

			bids, err := store.GetBidsForAuction("a1")
			require.NoError(t, err)
			require.Len(t, bids, 2)
		})
	}
}

// Concurrent bidders: the final current bid is the maximum attempted
// amount and every persisted bid cleared the floor it saw.
func TestStore_RecordBid_Concurrent(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateAuction(newAuction("a1", "owner1", 1, now)))

			var wg sync.WaitGroup
			concurrentCount := 50

			for i := 0; i < concurrentCount; i++ {
				wg.Add(1)
				i := i
				go func() {
					defer wg.Done()
					b := newBid(fmt.Sprintf("bid-%d", i), "a1", fmt.Sprintf("user-%d", i), float64(100+i), now)
					_, err := store.RecordBid(b, now)
					if err != nil {
						// Losing a race is the only acceptable failure.
						require.ErrorIs(t, err, auctionerrors.ErrBidTooLow)
					}
				}()
			}
			wg.Wait()

			a, err := store.GetAuction("a1")
			require.NoError(t, err)
			require.Equal(t, float64(100+concurrentCount-1), a.CurrentBid)

			// Persisted bids are exactly the accepted ones, in accepted order.
			bids, err := store.GetBidsForAuction("a1")
			require.NoError(t, err)
			require.Equal(t, len(a.Bids), len(bids))
			prev := 0.0
			for _, b := range bids {
				require.Greater(t, b.Amount, prev)
				prev = b.Amount
			}
		})
	}
}

// Test ClaimCommission: exactly one caller flips the flag
func TestStore_ClaimCommission(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateAuction(newAuction("a1", "owner1", 50, now)))

			claimed, err := store.ClaimCommission("a1")
			require.NoError(t, err)
			require.True(t, claimed)

			claimed, err = store.ClaimCommission("a1")
			require.NoError(t, err)
			require.False(t, claimed)

			_, err = store.ClaimCommission("aX")
			require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

			// Once claimed the auction drops out of the sweep candidates.
			expired := newAuction("a2", "owner1", 50, now)
			expired.EndTime = now.Add(-time.Minute)
			require.NoError(t, store.CreateAuction(expired))

			unsettled, err := store.ListExpiredUnsettled(now)
			require.NoError(t, err)
			require.Len(t, unsettled, 1)
			require.Equal(t, "a2", unsettled[0].AuctionID)
		})
	}
}

// Test SettleCommission: decrement clamps at zero
func TestStore_SettleCommission(t *testing.T) {
	t.Parallel()

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			tests := []struct {
				name       string
				unpaid     float64
				settle     float64
				wantUnpaid float64
			}{
				{name: "partial_settlement", unpaid: 100, settle: 40, wantUnpaid: 60},
				{name: "exact_settlement", unpaid: 100, settle: 100, wantUnpaid: 0},
				{name: "over_settlement_clamps_to_zero", unpaid: 30, settle: 100, wantUnpaid: 0},
			}

			for i, tc := range tests {
				tc, id := tc, fmt.Sprintf("u%d", i)
				t.Run(tc.name, func(t *testing.T) {
					store := factory(t)
					u := newUser(id, fmt.Sprintf("%s@test.dev", id), model.RoleAuctioneer)
					u.UnpaidCommission = tc.unpaid
					require.NoError(t, store.CreateUser(u))

					got, err := store.SettleCommission(id, tc.settle)
					require.NoError(t, err)
					require.Equal(t, tc.wantUnpaid, got.UnpaidCommission)
				})
			}

			t.Run("unknown_user", func(t *testing.T) {
				store := factory(t)
				_, err := store.SettleCommission("nobody", 10)
				require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
			})
		})
	}
}

// Test AdjustBalances: deltas apply atomically, including negatives
func TestStore_AdjustBalances(t *testing.T) {
	t.Parallel()

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateUser(newUser("u1", "u1@test.dev", model.RoleBidder)))

			got, err := store.AdjustBalances("u1", BalanceDelta{MoneySpent: 150, AuctionWon: 1})
			require.NoError(t, err)
			require.Equal(t, 150.0, got.MoneySpent)
			require.Equal(t, 1, got.AuctionWon)

			// Republish reverses the win with negative deltas.
			got, err = store.AdjustBalances("u1", BalanceDelta{MoneySpent: -150, AuctionWon: -1})
			require.NoError(t, err)
			require.Equal(t, 0.0, got.MoneySpent)
			require.Equal(t, 0, got.AuctionWon)

			_, err = store.AdjustBalances("nobody", BalanceDelta{MoneySpent: 1})
			require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)
		})
	}
}

// Test ResetAuction: republish clears bid state and reopens the window
func TestStore_ResetAuction(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateAuction(newAuction("a1", "owner1", 50, now)))
			_, err := store.RecordBid(newBid("b1", "a1", "u1", 60, now), now)
			require.NoError(t, err)
			require.NoError(t, store.SetHighestBidder("a1", "u1"))
			claimed, err := store.ClaimCommission("a1")
			require.NoError(t, err)
			require.True(t, claimed)

			start := now.Add(time.Hour)
			end := now.Add(2 * time.Hour)
			a, err := store.ResetAuction("a1", start, end)
			require.NoError(t, err)
			require.Equal(t, 0.0, a.CurrentBid)
			require.Empty(t, a.Bids)
			require.Empty(t, a.HighestBidder)
			require.False(t, a.CommissionCalculated)
			require.True(t, a.StartTime.Equal(start))
			require.True(t, a.EndTime.Equal(end))

			_, err = store.GetBidsForAuction("a1")
			require.ErrorIs(t, err, auctionerrors.ErrNoBids)
		})
	}
}

// Test user uniqueness and lookups
func TestStore_Users(t *testing.T) {
	t.Parallel()

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateUser(newUser("u1", "dup@test.dev", model.RoleBidder)))

			err := store.CreateUser(newUser("u2", "dup@test.dev", model.RoleBidder))
			require.ErrorIs(t, err, auctionerrors.ErrEmailTaken)

			got, err := store.GetUserByEmail("dup@test.dev")
			require.NoError(t, err)
			require.Equal(t, "u1", got.UserID)

			_, err = store.GetUserByEmail("missing@test.dev")
			require.ErrorIs(t, err, auctionerrors.ErrUserNotFound)

			require.NoError(t, store.UpdateUserPassword("u1", "newhash"))
			got, err = store.GetUser("u1")
			require.NoError(t, err)
			require.Equal(t, "newhash", got.PasswordHash)
		})
	}
}

// Test ListBigSpenders: spenders only, ranked by money spent
func TestStore_ListBigSpenders(t *testing.T) {
	t.Parallel()

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			for i, spent := range []float64{100, 0, 500, 250} {
				u := newUser(fmt.Sprintf("u%d", i), fmt.Sprintf("u%d@test.dev", i), model.RoleBidder)
				u.MoneySpent = spent
				require.NoError(t, store.CreateUser(u))
			}

			spenders, err := store.ListBigSpenders()
			require.NoError(t, err)
			require.Len(t, spenders, 3)
			require.Equal(t, "u2", spenders[0].UserID)
			require.Equal(t, "u3", spenders[1].UserID)
			require.Equal(t, "u0", spenders[2].UserID)
		})
	}
}

// Test payment proof lifecycle
func TestStore_Proofs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			p := model.PaymentProof{
				ProofID:   "p1",
				UserID:    "u1",
				Proof:     model.Image{ID: "img1", URL: "mem://img1"},
				Amount:    40,
				Comment:   "bank transfer ref 123",
				Status:    model.ProofPending,
				CreatedAt: now,
			}
			require.NoError(t, store.CreateProof(p))

			pending, err := store.ListProofsByStatus(model.ProofPending)
			require.NoError(t, err)
			require.Len(t, pending, 1)

			got, err := store.UpdateProof("p1", model.ProofApproved, 35)
			require.NoError(t, err)
			require.Equal(t, model.ProofApproved, got.Status)
			require.Equal(t, 35.0, got.Amount)

			pending, err = store.ListProofsByStatus(model.ProofPending)
			require.NoError(t, err)
			require.Empty(t, pending)

			require.NoError(t, store.DeleteProof("p1"))
			_, err = store.GetProof("p1")
			require.ErrorIs(t, err, auctionerrors.ErrProofNotFound)

			err = store.DeleteProof("p1")
			require.ErrorIs(t, err, auctionerrors.ErrProofNotFound)
		})
	}
}

// Test FindBidByAmount and the commission ledger
func TestStore_BidsAndLedger(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateAuction(newAuction("a1", "owner1", 50, now)))
			_, err := store.RecordBid(newBid("b1", "a1", "u1", 60, now), now)
			require.NoError(t, err)
			_, err = store.RecordBid(newBid("b2", "a1", "u2", 150, now), now)
			require.NoError(t, err)

			winning, err := store.FindBidByAmount("a1", 150)
			require.NoError(t, err)
			require.Equal(t, "u2", winning.BidderID)

			_, err = store.FindBidByAmount("a1", 999)
			require.ErrorIs(t, err, auctionerrors.ErrNoBids)

			require.NoError(t, store.AppendCommissionRecord(model.CommissionRecord{
				RecordID: "r1", UserID: "owner1", Amount: 8, CreatedAt: now,
			}))
			records, err := store.ListCommissionRecords()
			require.NoError(t, err)
			require.Len(t, records, 1)
			require.Equal(t, 8.0, records[0].Amount)
		})
	}
}

// Test DeleteAuction removes the auction and its bids
func TestStore_DeleteAuction(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	for backend, factory := range storeFactories() {
		backend, factory := backend, factory
		t.Run(backend, func(t *testing.T) {
			t.Parallel()

			store := factory(t)
			require.NoError(t, store.CreateAuction(newAuction("a1", "owner1", 50, now)))
			_, err := store.RecordBid(newBid("b1", "a1", "u1", 60, now), now)
			require.NoError(t, err)

			require.NoError(t, store.DeleteAuction("a1"))
			_, err = store.GetAuction("a1")
			require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
			_, err = store.GetBidsForAuction("a1")
			require.ErrorIs(t, err, auctionerrors.ErrNoBids)

			err = store.DeleteAuction("a1")
			require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
		})
	}
}
