package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankledger/internal/repos/accounts"
	pgaccounts "bankledger/internal/repos/accounts/postgres"
	"bankledger/internal/repos/ledger"
	pgledger "bankledger/internal/repos/ledger/postgres"
)

var (
	ErrBalanceNotNumeric = errors.New("balance is not numeric")
	ErrBalanceNegative   = errors.New("balance must not be negative")
)

// AccountService covers the account read side plus provisioning: listing,
// lookup, creation and the transaction history projection.
type AccountService struct {
	db       *sql.DB
	accounts accounts.Accounts
	ledger   ledger.Ledger
}

func New(db *sql.DB) *AccountService {
	return &AccountService{
		db:       db,
		accounts: pgaccounts.New(db),
		ledger:   pgledger.New(db),
	}
}

func (s *AccountService) GetAccounts(ctx context.Context, customerID int64) ([]accounts.Account, error) {
	out, err := s.accounts.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get accounts: %w", err)
	}

	return out, nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, accountID int64) (*accounts.Account, error) {
	a, err := s.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return a, nil
}

// CreateAccount provisions an account with a generated account number and the
// given initial balance.
func (s *AccountService) CreateAccount(ctx context.Context, customerID int64, balance string) (int64, error) {
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return 0, ErrBalanceNotNumeric
	}

	if bal.IsNegative() {
		return 0, ErrBalanceNegative
	}

	id, err := s.accounts.Create(ctx, customerID, uuid.NewString(), bal.Round(2))
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}

	return id, nil
}

// GetTransactions returns the account's ledger history, newest first,
// optionally restricted to one transaction type.
func (s *AccountService) GetTransactions(ctx context.Context, accountID int64, transactionType string) ([]ledger.Entry, error) {
	entries, err := s.ledger.ListEntries(ctx, accountID, transactionType)
	if err != nil {
		return nil, fmt.Errorf("get transactions: %w", err)
	}

	return entries, nil
}
