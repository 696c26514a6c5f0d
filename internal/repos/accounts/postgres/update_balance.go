package accounts

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"bankledger/internal/repos/accounts"
)

func (r *accountsRepo) UpdateBalance(tx *sql.Tx, accountID int64, balance decimal.Decimal) error {
	var id int64

	err := tx.QueryRow(`
		UPDATE accounts
			SET balance = $2
		WHERE
			id = $1
		RETURNING
			id
	`, accountID, balance).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return accounts.ErrAccountNotFound
		}

		return fmt.Errorf("update balance: %w", err)
	}

	return nil
}
