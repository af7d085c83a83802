package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mandikhata/trade_ledger_app/internal/apperrors"
	"github.com/mandikhata/trade_ledger_app/internal/core/domain"
	portsrepo "github.com/mandikhata/trade_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/mandikhata/trade_ledger_app/internal/core/ports/services"
	"github.com/mandikhata/trade_ledger_app/internal/dto"
)

// adjustmentService records manual ledger adjustments. Amounts are stored
// as unsigned magnitudes; the adjustment type decides the sign at
// aggregation time.
type adjustmentService struct {
	BaseService
	adjustmentRepo portsrepo.AdjustmentRepositoryFacade
	partyRepo      portsrepo.PartyReader
}

// NewAdjustmentService creates a new AdjustmentService.
func NewAdjustmentService(adjustmentRepo portsrepo.AdjustmentRepositoryFacade, partyRepo portsrepo.PartyReader) portssvc.AdjustmentSvcFacade {
	return &adjustmentService{
		adjustmentRepo: adjustmentRepo,
		partyRepo:      partyRepo,
	}
}

var _ portssvc.AdjustmentSvcFacade = (*adjustmentService)(nil)

func (s *adjustmentService) CreateAdjustment(ctx context.Context, req dto.CreateAdjustmentRequest, creatorUserID string) (*domain.Adjustment, error) {
	if _, err := s.partyRepo.FindPartyByID(ctx, req.PartyID); err != nil {
		return nil, fmt.Errorf("failed to resolve adjustment party %s: %w", req.PartyID, err)
	}
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("%w: adjustment amount must be an unsigned magnitude", apperrors.ErrValidation)
	}

	now := time.Now()
	adjustment := domain.Adjustment{
		AdjustmentID:   uuid.NewString(),
		PartyID:        req.PartyID,
		AdjustmentDate: req.AdjustmentDate,
		Amount:         req.Amount,
		AdjustmentType: req.AdjustmentType,
		Notes:          req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.adjustmentRepo.SaveAdjustment(ctx, adjustment); err != nil {
		s.LogError(ctx, err, "failed to save adjustment", slog.String("party_id", req.PartyID))
		return nil, fmt.Errorf("failed to create adjustment: %w", err)
	}

	s.LogInfo(ctx, "adjustment recorded",
		slog.String("adjustment_id", adjustment.AdjustmentID),
		slog.String("party_id", req.PartyID),
		slog.String("type", string(adjustment.AdjustmentType)))
	return &adjustment, nil
}

func (s *adjustmentService) ListAdjustmentsByParty(ctx context.Context, partyID string, from, to *time.Time) ([]domain.Adjustment, error) {
	adjustments, err := s.adjustmentRepo.ListAdjustmentsByParty(ctx, partyID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments for party %s: %w", partyID, err)
	}
	if adjustments == nil {
		return []domain.Adjustment{}, nil
	}
	return adjustments, nil
}

func (s *adjustmentService) DeleteAdjustment(ctx context.Context, adjustmentID string) error {
	if _, err := s.adjustmentRepo.FindAdjustmentByID(ctx, adjustmentID); err != nil {
		return fmt.Errorf("failed to find adjustment %s for deletion: %w", adjustmentID, err)
	}
	if err := s.adjustmentRepo.DeleteAdjustment(ctx, adjustmentID); err != nil {
		return fmt.Errorf("failed to delete adjustment %s: %w", adjustmentID, err)
	}
	s.LogInfo(ctx, "adjustment deleted", slog.String("adjustment_id", adjustmentID))
	return nil
}
