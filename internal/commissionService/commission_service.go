// Package commission implements payment-proof submission and the admin
// review operations the reconciliation sweep depends on.
package commission

import (
	"fmt"
	"time"

	"auction-platform/internal/auctionerrors"
	"auction-platform/internal/models"
	"auction-platform/internal/objectstore"
	"auction-platform/internal/repository"
	"auction-platform/utils"
)

// CommissionService implements proof submission and review.
type CommissionService struct {
	store  repository.Store
	images objectstore.Store
	now    func() time.Time
}

// NewCommissionService creates a new CommissionService instance.
func NewCommissionService(store repository.Store, images objectstore.Store) *CommissionService {
	return &CommissionService{store: store, images: images, now: time.Now}
}

// WithClock overrides the service clock. For tests.
func (s *CommissionService) WithClock(now func() time.Time) *CommissionService {
	s.now = now
	return s
}

// SubmitProof records a Pending payment proof. The claimed amount must not
// exceed the caller's unpaid balance; submitting with nothing owed is a
// no-op reported via the (false, nil) return.
func (s *CommissionService) SubmitProof(submitter models.User, amount float64, comment, imageName string, imageData []byte) (models.PaymentProof, bool, error) {
	if amount <= 0 || comment == "" {
		return models.PaymentProof{}, false, fmt.Errorf("service: %w: amount and comment are required", auctionerrors.ErrInvalidInput)
	}
	if len(imageData) == 0 {
		return models.PaymentProof{}, false, fmt.Errorf("service: %w: payment screenshot required", auctionerrors.ErrInvalidInput)
	}
	if submitter.UnpaidCommission == 0 {
		return models.PaymentProof{}, false, nil
	}
	if amount > submitter.UnpaidCommission {
		return models.PaymentProof{}, false, fmt.Errorf("service: submit proof for %s: unpaid balance is %.2f: %w",
			submitter.UserID, submitter.UnpaidCommission, auctionerrors.ErrProofExceedsUnpaid)
	}

	img, err := s.images.Save(imageName, imageData)
	if err != nil {
		return models.PaymentProof{}, false, fmt.Errorf("service: submit proof for %s: %w", submitter.UserID, err)
	}

	p := models.PaymentProof{
		ProofID:   utils.GenerateID(),
		UserID:    submitter.UserID,
		Proof:     models.Image{ID: img.ID, URL: img.URL},
		Amount:    amount,
		Comment:   comment,
		Status:    models.ProofPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.CreateProof(p); err != nil {
		return models.PaymentProof{}, false, fmt.Errorf("service: submit proof for %s: %w", submitter.UserID, err)
	}

	utils.Info("payment proof submitted", map[string]any{
		"proof_id": p.ProofID,
		"user_id":  p.UserID,
		"amount":   p.Amount,
	})
	return p, true, nil
}

// ListProofs returns every payment proof. Admin surface.
func (s *CommissionService) ListProofs() ([]models.PaymentProof, error) {
	proofs, err := s.store.ListProofs()
	if err != nil {
		return nil, fmt.Errorf("service: list proofs: %w", err)
	}
	return proofs, nil
}

// ProofDetail returns one payment proof. Admin surface.
func (s *CommissionService) ProofDetail(id string) (models.PaymentProof, error) {
	p, err := s.store.GetProof(id)
	if err != nil {
		return models.PaymentProof{}, fmt.Errorf("service: proof detail %s: %w", id, err)
	}
	return p, nil
}

// ReviewProof updates a proof's status and amount during admin review.
// Settled is reserved for the reconciliation sweep and cannot be set here.
func (s *CommissionService) ReviewProof(id string, status models.ProofStatus, amount float64) (models.PaymentProof, error) {
	if !status.Valid() || status == models.ProofSettled {
		return models.PaymentProof{}, fmt.Errorf("service: %w: status must be Pending, Approved or Rejected", auctionerrors.ErrInvalidInput)
	}
	if amount <= 0 {
		return models.PaymentProof{}, fmt.Errorf("service: %w: amount must be positive", auctionerrors.ErrInvalidInput)
	}
	p, err := s.store.UpdateProof(id, status, amount)
	if err != nil {
		return models.PaymentProof{}, fmt.Errorf("service: review proof %s: %w", id, err)
	}
	utils.Info("payment proof reviewed", map[string]any{
		"proof_id": id,
		"status":   status,
		"amount":   amount,
	})
	return p, nil
}

// DeleteProof removes a proof. Admin surface.
func (s *CommissionService) DeleteProof(id string) error {
	if err := s.store.DeleteProof(id); err != nil {
		return fmt.Errorf("service: delete proof %s: %w", id, err)
	}
	return nil
}
