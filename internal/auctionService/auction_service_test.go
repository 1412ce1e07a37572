package auction

import (
	"testing"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/internal/objectstore"
	"auction-platform/internal/repository"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*AuctionService, *repository.MemoryStore) {
	t.Helper()
	store := repository.NewMemoryStore()
	svc := NewAuctionService(store, objectstore.NewMemoryStore()).
		WithClock(func() time.Time { return testNow })
	return svc, store
}

func validParams() CreateParams {
	return CreateParams{
		Title:       "Vintage radio",
		Description: "Working 1950s tube radio",
		Category:    "Electronics",
		Condition:   "Used",
		StartingBid: 50,
		StartTime:   testNow.Add(time.Hour),
		EndTime:     testNow.Add(25 * time.Hour),
		ImageName:   "radio.png",
		ImageData:   []byte{0x89, 0x50, 0x4e, 0x47},
	}
}

// Tests Create
func TestAuctionService_Create(t *testing.T) {
	t.Parallel()

	auctioneer := model.User{UserID: "owner1", UserName: "bob", Role: model.RoleAuctioneer}

	// Table-driven test cases
	tests := []struct {
		name          string
		auctioneer    model.User
		mutate        func(*CreateParams)
		seed          func(store *repository.MemoryStore)
		expectedError error
	}{
		{
			name:       "valid_auction",
			auctioneer: auctioneer,
			mutate:     func(p *CreateParams) {},
		},
		{
			name:          "missing_title",
			auctioneer:    auctioneer,
			mutate:        func(p *CreateParams) { p.Title = "" },
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_starting_bid",
			auctioneer:    auctioneer,
			mutate:        func(p *CreateParams) { p.StartingBid = 0 },
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "missing_image",
			auctioneer:    auctioneer,
			mutate:        func(p *CreateParams) { p.ImageData = nil },
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "start_in_the_past",
			auctioneer:    auctioneer,
			mutate:        func(p *CreateParams) { p.StartTime = testNow.Add(-time.Hour) },
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "end_before_start",
			auctioneer:    auctioneer,
			mutate:        func(p *CreateParams) { p.EndTime = p.StartTime.Add(-time.Minute) },
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "unpaid_commission",
			auctioneer:    model.User{UserID: "owner1", Role: model.RoleAuctioneer, UnpaidCommission: 12},
			mutate:        func(p *CreateParams) {},
			expectedError: auctionerrors.ErrUnpaidCommission,
		},
		{
			name:       "already_has_active_auction",
			auctioneer: auctioneer,
			mutate:     func(p *CreateParams) {},
			seed: func(store *repository.MemoryStore) {
				require.NoError(t, store.CreateAuction(model.Auction{
					AuctionID: "existing",
					CreatedBy: "owner1",
					StartTime: testNow.Add(-time.Hour),
					EndTime:   testNow.Add(time.Hour),
				}))
			},
			expectedError: auctionerrors.ErrDuplicateActiveAuction,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store := newService(t)
			if tc.seed != nil {
				tc.seed(store)
			}

			p := validParams()
			tc.mutate(&p)

			a, err := svc.Create(tc.auctioneer, p)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, a.AuctionID)
			require.Equal(t, "owner1", a.CreatedBy)
			require.NotEmpty(t, a.Image.URL)
			require.Equal(t, 0.0, a.CurrentBid)

			stored, err := store.GetAuction(a.AuctionID)
			require.NoError(t, err)
			require.Equal(t, a.AuctionID, stored.AuctionID)
		})
	}
}

// Tests Detail: snapshots come back highest first
func TestAuctionService_Detail(t *testing.T) {
	t.Parallel()

	svc, store := newService(t)
	require.NoError(t, store.CreateAuction(model.Auction{
		AuctionID: "a1",
		CreatedBy: "owner1",
		StartTime: testNow.Add(-time.Hour),
		EndTime:   testNow.Add(time.Hour),
		Bids: []model.BidSnapshot{
			{BidderID: "u1", Amount: 60},
			{BidderID: "u3", Amount: 150},
			{BidderID: "u2", Amount: 90},
		},
	}))

	a, err := svc.Detail("a1")
	require.NoError(t, err)
	require.Equal(t, []float64{150, 90, 60},
		[]float64{a.Bids[0].Amount, a.Bids[1].Amount, a.Bids[2].Amount})

	_, err = svc.Detail("missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)

	_, err = svc.Detail("")
	require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
}

// Tests Delete ownership rules
func TestAuctionService_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		requesterID   string
		expectedError error
	}{
		{name: "owner_deletes", requesterID: "owner1"},
		{name: "admin_deletes", requesterID: ""},
		{name: "stranger_forbidden", requesterID: "intruder", expectedError: auctionerrors.ErrForbidden},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc, store := newService(t)
			require.NoError(t, store.CreateAuction(model.Auction{
				AuctionID: "a1",
				CreatedBy: "owner1",
				StartTime: testNow.Add(-time.Hour),
				EndTime:   testNow.Add(time.Hour),
			}))

			err := svc.Delete("a1", tc.requesterID)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				_, err = store.GetAuction("a1")
				require.NoError(t, err)
				return
			}
			require.NoError(t, err)
			_, err = store.GetAuction("a1")
			require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
		})
	}
}

// Tests Republish: reversal of the prior winner, full reset, commission
// forgiveness
func TestAuctionService_Republish(t *testing.T) {
	t.Parallel()

	auctioneer := model.User{UserID: "owner1", Role: model.RoleAuctioneer}
	newStart := testNow.Add(time.Hour)
	newEnd := testNow.Add(25 * time.Hour)

	t.Run("full_reversal_and_reset", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t)
		require.NoError(t, store.CreateUser(model.User{
			UserID: "owner1", Email: "owner@test.dev", Role: model.RoleAuctioneer,
			UnpaidCommission: 8,
		}))
		require.NoError(t, store.CreateUser(model.User{
			UserID: "winner1", Email: "winner@test.dev", Role: model.RoleBidder,
			MoneySpent: 150, AuctionWon: 1,
		}))
		require.NoError(t, store.CreateAuction(model.Auction{
			AuctionID:            "a1",
			CreatedBy:            "owner1",
			StartTime:            testNow.Add(-3 * time.Hour),
			EndTime:              testNow.Add(-time.Hour),
			CurrentBid:           150,
			HighestBidder:        "winner1",
			CommissionCalculated: true,
			Bids:                 []model.BidSnapshot{{BidderID: "winner1", Amount: 150}},
		}))

		a, err := svc.Republish("a1", auctioneer, newStart, newEnd)
		require.NoError(t, err)
		require.Equal(t, 0.0, a.CurrentBid)
		require.Empty(t, a.Bids)
		require.Empty(t, a.HighestBidder)
		require.False(t, a.CommissionCalculated)
		require.True(t, a.StartTime.Equal(newStart))
		require.True(t, a.EndTime.Equal(newEnd))

		winner, err := store.GetUser("winner1")
		require.NoError(t, err)
		require.Equal(t, 0.0, winner.MoneySpent)
		require.Equal(t, 0, winner.AuctionWon)

		owner, err := store.GetUser("owner1")
		require.NoError(t, err)
		require.Equal(t, 0.0, owner.UnpaidCommission)
	})

	t.Run("missing_winner_account_does_not_block", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t)
		require.NoError(t, store.CreateUser(model.User{
			UserID: "owner1", Email: "owner@test.dev", Role: model.RoleAuctioneer,
		}))
		require.NoError(t, store.CreateAuction(model.Auction{
			AuctionID:     "a1",
			CreatedBy:     "owner1",
			StartTime:     testNow.Add(-3 * time.Hour),
			EndTime:       testNow.Add(-time.Hour),
			CurrentBid:    99,
			HighestBidder: "vanished",
		}))

		a, err := svc.Republish("a1", auctioneer, newStart, newEnd)
		require.NoError(t, err)
		require.Equal(t, 0.0, a.CurrentBid)
	})

	t.Run("still_active", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t)
		require.NoError(t, store.CreateAuction(model.Auction{
			AuctionID: "a1",
			CreatedBy: "owner1",
			StartTime: testNow.Add(-time.Hour),
			EndTime:   testNow.Add(time.Hour),
		}))

		_, err := svc.Republish("a1", auctioneer, newStart, newEnd)
		require.ErrorIs(t, err, auctionerrors.ErrAuctionActive)
	})

	t.Run("not_owner", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t)
		require.NoError(t, store.CreateAuction(model.Auction{
			AuctionID: "a1",
			CreatedBy: "someone-else",
			StartTime: testNow.Add(-3 * time.Hour),
			EndTime:   testNow.Add(-time.Hour),
		}))

		_, err := svc.Republish("a1", auctioneer, newStart, newEnd)
		require.ErrorIs(t, err, auctionerrors.ErrForbidden)
	})

	t.Run("past_window_rejected", func(t *testing.T) {
		t.Parallel()

		svc, store := newService(t)
		require.NoError(t, store.CreateAuction(model.Auction{
			AuctionID: "a1",
			CreatedBy: "owner1",
			StartTime: testNow.Add(-3 * time.Hour),
			EndTime:   testNow.Add(-time.Hour),
		}))

		_, err := svc.Republish("a1", auctioneer, testNow.Add(-time.Minute), newEnd)
		require.ErrorIs(t, err, auctionerrors.ErrInvalidInput)
	})
}
