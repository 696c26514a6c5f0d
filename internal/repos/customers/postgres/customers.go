package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bankledger/internal/repos/customers"
)

var _ customers.Customers = (*customersRepo)(nil)

type customersRepo struct{ db *sql.DB }

func New(db *sql.DB) *customersRepo {
	return &customersRepo{db: db}
}

func (r *customersRepo) List(ctx context.Context) ([]customers.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.name, c.created_at
		FROM customers c
		ORDER BY c.id
	`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var out []customers.Customer
	for rows.Next() {
		var c customers.Customer
		err = rows.Scan(&c.ID, &c.Name, &c.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("iterate customers: %w", err)
	}

	return out, nil
}

func (r *customersRepo) GetByID(ctx context.Context, customerID int64) (*customers.Customer, error) {
	var c customers.Customer

	err := r.db.QueryRowContext(ctx, `
		SELECT c.id, c.name, c.created_at
		FROM customers c
		WHERE c.id = $1
	`, customerID).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customers.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("get customer by id: %w", err)
	}

	return &c, nil
}
