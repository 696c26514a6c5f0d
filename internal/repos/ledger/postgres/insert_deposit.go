package ledger

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
)

func (r *ledgerRepo) InsertDeposit(tx *sql.Tx, transactionID int64, amount, endingAmount decimal.Decimal) (int64, error) {
	var id int64

	err := tx.QueryRow(`
		INSERT INTO deposits
			(transaction_id, amount, ending_amount)
		VALUES
			($1, $2, $3)
		RETURNING
			id
	`, transactionID, amount, endingAmount).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert deposit: %w", err)
	}

	return id, nil
}
