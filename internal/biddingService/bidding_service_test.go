package bidding

import (
	"errors"
	"testing"
	"time"

	"auction-platform/internal/auctionerrors"
	model "auction-platform/internal/models"
	"auction-platform/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// Tests PlaceBid
func TestBiddingService_PlaceBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockStore(ctrl)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	service := NewBiddingService(mockStore).WithClock(func() time.Time { return now })

	bidder := model.User{UserID: "user1", UserName: "alice", Role: model.RoleBidder}

	// Table-driven test cases
	tests := []struct {
		name          string
		auctionID     string
		bidder        model.User
		amount        float64
		mockSetup     func()
		expectedError error
	}{
		{
			name:      "valid_bid",
			auctionID: "auction1",
			bidder:    bidder,
			amount:    100,
			mockSetup: func() {
				mockStore.EXPECT().
					RecordBid(gomock.Any(), now).
					DoAndReturn(func(b model.Bid, _ time.Time) (model.Auction, error) {
						require.Equal(t, "auction1", b.AuctionID)
						require.Equal(t, "user1", b.BidderID)
						require.Equal(t, 100.0, b.Amount)
						require.Equal(t, now, b.CreatedAt)
						require.NotEmpty(t, b.BidID)
						return model.Auction{AuctionID: "auction1", CurrentBid: 100}, nil
					})
			},
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			bidder:        bidder,
			amount:        50,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "empty_bidderID",
			auctionID:     "auction1",
			bidder:        model.User{},
			amount:        50,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "zero_amount",
			auctionID:     "auction1",
			bidder:        bidder,
			amount:        0,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:          "negative_amount",
			auctionID:     "auction1",
			bidder:        bidder,
			amount:        -50,
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "bid_too_low",
			auctionID: "auction1",
			bidder:    bidder,
			amount:    80,
			mockSetup: func() {
				mockStore.EXPECT().
					RecordBid(gomock.Any(), now).
					Return(model.Auction{}, auctionerrors.ErrBidTooLow)
			},
			expectedError: auctionerrors.ErrBidTooLow,
		},
		{
			name:      "auction_closed",
			auctionID: "auction1",
			bidder:    bidder,
			amount:    120,
			mockSetup: func() {
				mockStore.EXPECT().
					RecordBid(gomock.Any(), now).
					Return(model.Auction{}, auctionerrors.ErrAuctionClosed)
			},
			expectedError: auctionerrors.ErrAuctionClosed,
		},
		{
			name:      "store_fails",
			auctionID: "auction1",
			bidder:    bidder,
			amount:    120,
			mockSetup: func() {
				mockStore.EXPECT().
					RecordBid(gomock.Any(), now).
					Return(model.Auction{}, errors.New("store write failed"))
			},
			expectedError: nil, // wrapped store error, no sentinel to match
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			auction, err := service.PlaceBid(tc.auctionID, tc.bidder, tc.amount)
			switch {
			case tc.expectedError != nil:
				require.ErrorIs(t, err, tc.expectedError)
			case tc.name == "store_fails":
				require.Error(t, err)
			default:
				require.NoError(t, err)
				require.Equal(t, tc.amount, auction.CurrentBid)
			}
		})
	}
}

// Tests GetBidsForAuction
func TestBiddingService_GetBidsForAuction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStore := repository.NewMockStore(ctrl)
	service := NewBiddingService(mockStore)

	seeded := []model.Bid{
		{BidID: "b1", AuctionID: "auction1", BidderID: "user1", Amount: 100},
		{BidID: "b2", AuctionID: "auction1", BidderID: "user2", Amount: 150},
	}

	tests := []struct {
		name          string
		auctionID     string
		mockSetup     func()
		wantBids      []model.Bid
		expectedError error
	}{
		{
			name:      "auction_with_bids",
			auctionID: "auction1",
			mockSetup: func() {
				mockStore.EXPECT().GetBidsForAuction("auction1").Return(seeded, nil)
			},
			wantBids: seeded,
		},
		{
			name:          "empty_auctionID",
			auctionID:     "",
			mockSetup:     func() {},
			expectedError: auctionerrors.ErrInvalidInput,
		},
		{
			name:      "no_bids",
			auctionID: "auction2",
			mockSetup: func() {
				mockStore.EXPECT().GetBidsForAuction("auction2").Return(nil, auctionerrors.ErrNoBids)
			},
			expectedError: auctionerrors.ErrNoBids,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			bids, err := service.GetBidsForAuction(tc.auctionID)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantBids, bids)
		})
	}
}
