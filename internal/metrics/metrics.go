// Package metrics exposes the platform's prometheus counters.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BidsAccepted counts bids that passed the conditional current-bid update.
	BidsAccepted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_accepted_total",
		Help: "Bids accepted and recorded.",
	})

	// BidsRejected counts rejected bids by reason.
	BidsRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_bids_rejected_total",
		Help: "Bids rejected, by reason.",
	}, []string{"reason"})

	// AuctionsSettled counts auctions processed to completion by the
	// closing sweep.
	AuctionsSettled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_closings_settled_total",
		Help: "Auctions settled by the closing sweep.",
	})

	// ProofsReconciled counts payment proofs moved to Settled.
	ProofsReconciled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auction_proofs_reconciled_total",
		Help: "Payment proofs settled by the reconciliation sweep.",
	})

	// SweepErrors counts per-item sweep failures by sweep name.
	SweepErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_sweep_errors_total",
		Help: "Per-item sweep processing failures, by sweep.",
	}, []string{"sweep"})

	// SweepRuns counts completed sweep ticks by sweep name.
	SweepRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_sweep_runs_total",
		Help: "Completed sweep ticks, by sweep.",
	}, []string{"sweep"})

	// SweepSkipped counts ticks skipped because the previous run was
	// still in flight.
	SweepSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auction_sweep_skipped_total",
		Help: "Sweep ticks skipped due to an overlapping run, by sweep.",
	}, []string{"sweep"})
)
