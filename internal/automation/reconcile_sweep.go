package automation

import (
	"time"

	"auction-platform/internal/metrics"
	"auction-platform/internal/models"
	"auction-platform/internal/notify"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// ReconciliationSweep settles approved payment proofs: it decrements the
// submitter's unpaid commission, marks the proof settled, appends a ledger
// entry, and emails the user. Each proof is processed independently.
type ReconciliationSweep struct {
	store    repository.Store
	notifier notify.Notifier
}

// NewReconciliationSweep creates the sweep.
func NewReconciliationSweep(store repository.Store, notifier notify.Notifier) *ReconciliationSweep {
	return &ReconciliationSweep{store: store, notifier: notifier}
}

// Name identifies the sweep in logs and metrics.
func (r *ReconciliationSweep) Name() string { return "commission_reconciliation" }

// RunOnce settles every approved proof.
func (r *ReconciliationSweep) RunOnce(now time.Time) {
	approved, err := r.store.ListProofsByStatus(models.ProofApproved)
	if err != nil {
		metrics.SweepErrors.WithLabelValues(r.Name()).Inc()
		utils.Error("reconciliation sweep: query approved proofs", map[string]any{"error": err.Error()})
		return
	}

	for _, proof := range approved {
		if err := r.settle(proof, now); err != nil {
			metrics.SweepErrors.WithLabelValues(r.Name()).Inc()
			utils.Error("reconciliation sweep: settle proof", map[string]any{
				"proof_id": proof.ProofID,
				"user_id":  proof.UserID,
				"error":    err.Error(),
			})
		}
	}
}

func (r *ReconciliationSweep) settle(proof models.PaymentProof, now time.Time) error {
	// The decrement clamps at zero when the approved amount exceeds what
	// is owed: the excess is absorbed rather than rejected.
	user, err := r.store.SettleCommission(proof.UserID, proof.Amount)
	if err != nil {
		// Submitter account missing; leave the proof for investigation.
		utils.Error("reconciliation sweep: user not found", map[string]any{
			"proof_id": proof.ProofID,
			"user_id":  proof.UserID,
		})
		return nil
	}

	if _, err := r.store.UpdateProof(proof.ProofID, models.ProofSettled, proof.Amount); err != nil {
		return err
	}

	if err := r.store.AppendCommissionRecord(models.CommissionRecord{
		RecordID:  utils.GenerateID(),
		UserID:    user.UserID,
		Amount:    proof.Amount,
		CreatedAt: now,
	}); err != nil {
		return err
	}

	metrics.ProofsReconciled.Inc()
	utils.Info("reconciliation sweep: proof settled", map[string]any{
		"proof_id":         proof.ProofID,
		"user_id":          user.UserID,
		"amount":           proof.Amount,
		"remaining_unpaid": user.UnpaidCommission,
	})

	subject, text, html := notify.SettlementMessage(user.UserName, proof.Amount, user.UnpaidCommission, now)
	if err := r.notifier.Send(user.Email, subject, text, html); err != nil {
		utils.Error("reconciliation sweep: settlement email failed", map[string]any{
			"proof_id": proof.ProofID,
			"user_id":  user.UserID,
			"error":    err.Error(),
		})
	}
	return nil
}
