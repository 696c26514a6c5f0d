package accounts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"bankledger/internal/repos/accounts"
)

// LockBalance takes a row lock on the account and returns its current
// balance. Concurrent transfers touching the same account serialize here.
func (r *accountsRepo) LockBalance(tx *sql.Tx, accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal

	err := tx.QueryRow(`
		SELECT balance
		FROM accounts
		WHERE id = $1
		FOR UPDATE
	`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Decimal{}, accounts.ErrAccountNotFound
		}

		return decimal.Decimal{}, fmt.Errorf("lock/get balance: %w", err)
	}

	return balance, nil
}
