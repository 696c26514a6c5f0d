package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"bankledger/internal/repos/ledger"
)

func (r *ledgerRepo) InsertTransaction(tx *sql.Tx, accountID int64, transactionNumber, description, typeName string) (int64, error) {
	var id int64

	err := tx.QueryRow(`
		INSERT INTO transactions
			(account_id, transaction_number, description, transaction_type)
		VALUES
			($1, $2, $3, (SELECT id FROM transaction_types tt WHERE tt.name = $4))
		RETURNING
			id
	`, accountID, transactionNumber, description, typeName).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, ledger.ErrDuplicateTransactionNumber
		}

		return 0, fmt.Errorf("insert transaction: %w", err)
	}

	return id, nil
}
