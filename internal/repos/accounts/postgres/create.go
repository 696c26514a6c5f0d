package accounts

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

func (r *accountsRepo) Create(ctx context.Context, customerID int64, accountNumber string, balance decimal.Decimal) (int64, error) {
	var id int64

	err := r.db.QueryRowContext(ctx, `
		INSERT INTO accounts
			(customer_id, account_number, balance)
		VALUES
			($1, $2, $3)
		RETURNING
			id
	`, customerID, accountNumber, balance).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create account: %w", err)
	}

	return id, nil
}
