package ledger

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

func (r *ledgerRepo) InsertTransfer(tx *sql.Tx, transactionID, fromAccountID, toAccountID int64, amount, endingAmount decimal.Decimal) (int64, error) {
	var id int64

	err := tx.QueryRow(`
		INSERT INTO transfers
			(transaction_id, from_account_id, to_account_id, amount, ending_amount)
		VALUES
			($1, $2, $3, $4, $5)
		RETURNING
			id
	`, transactionID, fromAccountID, toAccountID, amount, endingAmount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert transfer: %w", err)
	}

	return id, nil
}
