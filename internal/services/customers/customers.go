package customers

import (
	"context"
	"database/sql"
	"fmt"

	"bankledger/internal/repos/customers"
	pgcustomers "bankledger/internal/repos/customers/postgres"
)

type CustomerService struct {
	db        *sql.DB
	customers customers.Customers
}

func New(db *sql.DB) *CustomerService {
	return &CustomerService{
		db:        db,
		customers: pgcustomers.New(db),
	}
}

func (s *CustomerService) GetCustomers(ctx context.Context) ([]customers.Customer, error) {
	out, err := s.customers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get customers: %w", err)
	}

	return out, nil
}

func (s *CustomerService) GetCustomerByID(ctx context.Context, customerID int64) (*customers.Customer, error) {
	c, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer by id: %w", err)
	}

	return c, nil
}
