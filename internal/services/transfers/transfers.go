package transfers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"bankledger/internal/infra/pgutils"
	"bankledger/internal/repos/accounts"
	pgaccounts "bankledger/internal/repos/accounts/postgres"
	"bankledger/internal/repos/ledger"
	pgledger "bankledger/internal/repos/ledger/postgres"
)

var (
	ErrSameAccount       = errors.New("same sender and recipient account")
	ErrAmountNotNumeric  = errors.New("amount is not numeric")
	ErrAmountNotPositive = errors.New("amount must be greater than zero")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrTransferFailed    = errors.New("failed to process transfer amount")
)

type TransferService struct {
	db       *sql.DB
	accounts accounts.Accounts
	ledger   ledger.Ledger
}

func New(db *sql.DB) *TransferService {
	return &TransferService{
		db:       db,
		accounts: pgaccounts.New(db),
		ledger:   pgledger.New(db),
	}
}

// GetAccountByNumber resolves the account aggregate shared with transfer
// requests; absence is accounts.ErrAccountNotFound.
func (s *TransferService) GetAccountByNumber(ctx context.Context, accountNumber string) (*accounts.Account, error) {
	a, err := s.accounts.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("get account by number: %w", err)
	}

	return a, nil
}

// Transfer moves amount from one account to another as one atomic sequence.
//
// Validation happens before the database transaction opens, each failure its
// own sentinel. Inside the transaction both account rows are locked
// (FOR UPDATE, ascending id so two opposite transfers cannot deadlock), the
// insufficient-funds check is repeated against the locked source balance, and
// the ledger trail is written:
//
//  1. TRANSFER transaction under the source account
//  2. transfer row with the source's ending balance
//  3. source balance update
//  4. DEPOSIT transaction under the destination account
//  5. deposit row with the destination's ending balance
//  6. destination balance update
//
// Any failure rolls the whole sequence back; nothing partial ever commits.
func (s *TransferService) Transfer(ctx context.Context, fromAccount, toAccount *accounts.Account, amount string) error {
	if fromAccount.AccountNumber == toAccount.AccountNumber {
		return ErrSameAccount
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return ErrAmountNotNumeric
	}

	if !amt.IsPositive() {
		return ErrAmountNotPositive
	}

	amt = amt.Round(2)

	if amt.GreaterThan(fromAccount.Balance) {
		return ErrInsufficientFunds
	}

	err = pgutils.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		fromBalance, toBalance, lockErr := s.lockPair(tx, fromAccount.ID, toAccount.ID)
		if lockErr != nil {
			return fmt.Errorf("lock accounts: %w", lockErr)
		}

		// Re-check under the row lock: the pre-check above ran against a
		// balance another transfer may have changed since.
		if amt.GreaterThan(fromBalance) {
			return ErrInsufficientFunds
		}

		transferTxID, txErr := s.ledger.InsertTransaction(
			tx, fromAccount.ID, uuid.NewString(), "", ledger.TypeTransfer)
		if txErr != nil {
			return fmt.Errorf("insert transfer transaction: %w", txErr)
		}

		fromEnding := fromBalance.Sub(amt).Round(2)

		_, txErr = s.ledger.InsertTransfer(
			tx, transferTxID, fromAccount.ID, toAccount.ID, amt, fromEnding)
		if txErr != nil {
			return fmt.Errorf("insert transfer: %w", txErr)
		}

		txErr = s.accounts.UpdateBalance(tx, fromAccount.ID, fromEnding)
		if txErr != nil {
			return fmt.Errorf("update sender balance: %w", txErr)
		}

		depositTxID, txErr := s.ledger.InsertTransaction(
			tx, toAccount.ID, uuid.NewString(), "", ledger.TypeDeposit)
		if txErr != nil {
			return fmt.Errorf("insert deposit transaction: %w", txErr)
		}

		toEnding := toBalance.Add(amt).Round(2)

		_, txErr = s.ledger.InsertDeposit(tx, depositTxID, amt, toEnding)
		if txErr != nil {
			return fmt.Errorf("insert deposit: %w", txErr)
		}

		txErr = s.accounts.UpdateBalance(tx, toAccount.ID, toEnding)
		if txErr != nil {
			return fmt.Errorf("update recipient balance: %w", txErr)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInsufficientFunds) {
			return ErrInsufficientFunds
		}

		return fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	return nil
}

// lockPair locks both account rows in ascending id order and returns the
// balances keyed back to (from, to).
func (s *TransferService) lockPair(tx *sql.Tx, fromID, toID int64) (decimal.Decimal, decimal.Decimal, error) {
	firstID, secondID := fromID, toID
	if toID < fromID {
		firstID, secondID = toID, fromID
	}

	firstBal, err := s.accounts.LockBalance(tx, firstID)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("lock account %d: %w", firstID, err)
	}

	secondBal, err := s.accounts.LockBalance(tx, secondID)
	if err != nil {
		return decimal.Decimal{}, decimal.Decimal{}, fmt.Errorf("lock account %d: %w", secondID, err)
	}

	if firstID == fromID {
		return firstBal, secondBal, nil
	}

	return secondBal, firstBal, nil
}
