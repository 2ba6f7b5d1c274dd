package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/budgetbuddy/budget_buddy_app/internal/core/domain"
	portsrepo "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/repositories"
	portssvc "github.com/budgetbuddy/budget_buddy_app/internal/core/ports/services"
	"github.com/budgetbuddy/budget_buddy_app/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
}

// NewAccountService creates a new account service.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
	}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.accountRepo.FindAccountByID(ctx, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.accountRepo.ListAccounts(ctx)
}

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) (*domain.Account, error) {
	now := time.Now().UTC()
	account := domain.Account{
		AccountID:      uuid.NewString(),
		Name:           req.Name,
		AccountType:    req.AccountType,
		InitialBalance: req.InitialBalance,
		IconName:       req.IconName,
		ColorHex:       req.ColorHex,
		IsDefault:      req.IsDefault,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if req.IsDefault {
		if err := s.clearOtherDefaults(ctx, account.AccountID); err != nil {
			return nil, err
		}
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", req.Name))
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.IconName != nil {
		account.IconName = *req.IconName
	}
	if req.ColorHex != nil {
		account.ColorHex = *req.ColorHex
	}
	if req.IsDefault != nil {
		account.IsDefault = *req.IsDefault
		if account.IsDefault {
			if err := s.clearOtherDefaults(ctx, accountID); err != nil {
				return nil, err
			}
		}
	}
	account.LastUpdatedAt = time.Now().UTC()

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return account, nil
}

func (s *accountService) ArchiveAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.ArchiveAccount(ctx, accountID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Failed to archive account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account archived", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) DeleteAccount(ctx context.Context, accountID string) error {
	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}
	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

// clearOtherDefaults keeps the "at most one non-archived default account"
// invariant when an account is being promoted to default.
func (s *accountService) clearOtherDefaults(ctx context.Context, keepAccountID string) error {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list accounts while updating default flag: %w", err)
	}

	now := time.Now().UTC()
	for _, other := range accounts {
		if other.AccountID == keepAccountID || !other.IsDefault {
			continue
		}
		other.IsDefault = false
		other.LastUpdatedAt = now
		if err := s.accountRepo.UpdateAccount(ctx, other); err != nil {
			return fmt.Errorf("failed to clear default flag on account %s: %w", other.AccountID, err)
		}
	}
	return nil
}
