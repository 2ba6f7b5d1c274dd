package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
)

// currentDataFixVersion is the newest known repair. Bump it when adding a
// repair step below.
const currentDataFixVersion = 1

// dataRepairService implements DataRepairSvc. Repairs run exactly once per
// installation, in order, tracked by the version counter in runtime state.
type dataRepairService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	runtimeRepo portsrepo.RuntimeStateRepository
}

// NewDataRepairService creates a new data repair service.
func NewDataRepairService(txnRepo portsrepo.TransactionRepositoryFacade, runtimeRepo portsrepo.RuntimeStateRepository) portssvc.DataRepairSvc {
	return &dataRepairService{
		txnRepo:     txnRepo,
		runtimeRepo: runtimeRepo,
	}
}

// Ensure dataRepairService implements the DataRepairSvc interface
var _ portssvc.DataRepairSvc = (*dataRepairService)(nil)

func (s *dataRepairService) RepairIfNeeded(ctx context.Context) error {
	version, err := s.runtimeRepo.GetDataFixVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to read data-fix version: %w", err)
	}
	if version >= currentDataFixVersion {
		return nil
	}

	if version < 1 {
		if err := s.clearTemplateSelfReferences(ctx); err != nil {
			return fmt.Errorf("data repair 1 failed: %w", err)
		}
	}

	if err := s.runtimeRepo.SetDataFixVersion(ctx, currentDataFixVersion); err != nil {
		return fmt.Errorf("failed to record data-fix version: %w", err)
	}

	s.LogInfo(ctx, "Data repairs applied",
		slog.Int("from_version", version),
		slog.Int("to_version", currentDataFixVersion))
	return nil
}

// clearTemplateSelfReferences fixes templates that were saved with a stray
// template reference. A template is the origin of a series and must never
// point at another template, otherwise the generator would treat it as a
// generated occurrence.
func (s *dataRepairService) clearTemplateSelfReferences(ctx context.Context) error {
	transactions, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to list transactions: %w", err)
	}

	repaired := 0
	now := time.Now().UTC()
	for _, txn := range transactions {
		if !txn.IsRecurringTemplate || txn.TemplateID == "" {
			continue
		}
		txn.TemplateID = ""
		txn.LastUpdatedAt = now
		if err := s.txnRepo.UpdateTransaction(ctx, txn); err != nil {
			return fmt.Errorf("failed to repair template %s: %w", txn.TransactionID, err)
		}
		repaired++
	}

	if repaired > 0 {
		s.LogInfo(ctx, "Cleared stray template references", slog.Int("count", repaired))
	}
	return nil
}
