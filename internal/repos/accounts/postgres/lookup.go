package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankledger/internal/repos/accounts"
)

func (r *accountsRepo) GetByID(ctx context.Context, accountID int64) (*accounts.Account, error) {
	var a accounts.Account

	err := r.db.QueryRowContext(ctx, `
		SELECT
			a.id,
			a.account_number,
			a.balance,
			c.name
		FROM accounts a
		INNER JOIN customers c
			ON a.customer_id = c.id
		WHERE
			a.id = $1
	`, accountID).Scan(&a.ID, &a.AccountNumber, &a.Balance, &a.OwnerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrAccountNotFound
		}

		return nil, fmt.Errorf("get account by id: %w", err)
	}

	return &a, nil
}

func (r *accountsRepo) GetByNumber(ctx context.Context, accountNumber string) (*accounts.Account, error) {
	var a accounts.Account

	err := r.db.QueryRowContext(ctx, `
		SELECT
			a.id,
			a.account_number,
			a.balance,
			c.name
		FROM accounts a
		INNER JOIN customers c
			ON a.customer_id = c.id
		WHERE
			a.account_number = $1
	`, accountNumber).Scan(&a.ID, &a.AccountNumber, &a.Balance, &a.OwnerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, accounts.ErrAccountNotFound
		}

		return nil, fmt.Errorf("get account by number: %w", err)
	}

	return &a, nil
}

func (r *accountsRepo) ListByCustomer(ctx context.Context, customerID int64) ([]accounts.Account, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			a.id,
			a.account_number,
			a.balance,
			c.name
		FROM accounts a
		INNER JOIN customers c
			ON a.customer_id = c.id
		WHERE
			c.id = $1
		ORDER BY a.id
	`, customerID)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var out []accounts.Account
	for rows.Next() {
		var a accounts.Account
		err = rows.Scan(&a.ID, &a.AccountNumber, &a.Balance, &a.OwnerName)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		out = append(out, a)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return out, nil
}
