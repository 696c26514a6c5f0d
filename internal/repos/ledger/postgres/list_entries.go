package ledger

import (
	"context"
	"fmt"

	"bankledger/internal/repos/ledger"
)

// ListEntries unions the transfer legs and deposit legs of an account into
// one history, newest first. typeFilter restricts to TRANSFER or DEPOSIT
// entries after the union; empty means no filter.
func (r *ledgerRepo) ListEntries(ctx context.Context, accountID int64, typeFilter string) ([]ledger.Entry, error) {
	query := `
		SELECT
			ut.id,
			ut.created_at,
			ut.description,
			ut.amount,
			ut.transaction_type
		FROM (
			SELECT
				t2.id,
				t2.created_at,
				t2.description,
				t.amount,
				(SELECT name FROM transaction_types tt WHERE tt.id = t2.transaction_type) AS transaction_type
			FROM transfers t
			INNER JOIN transactions t2
				ON t.transaction_id = t2.id
			WHERE
				t2.account_id = $1
			UNION
			SELECT
				t.id,
				t.created_at,
				t.description,
				d.amount,
				(SELECT name FROM transaction_types tt WHERE tt.id = t.transaction_type) AS transaction_type
			FROM deposits d
			INNER JOIN transactions t
				ON d.transaction_id = t.id
			WHERE
				t.account_id = $1
		) ut
	`
	args := []any{accountID}

	if typeFilter != "" {
		query += ` WHERE ut.transaction_type = $2`
		args = append(args, typeFilter)
	}

	query += ` ORDER BY ut.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var out []ledger.Entry
	for rows.Next() {
		var e ledger.Entry
		err = rows.Scan(&e.ID, &e.CreatedAt, &e.Description, &e.Amount, &e.Type)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, e)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}

	return out, nil
}
