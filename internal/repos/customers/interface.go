package customers

import (
	"context"
	"errors"
	"time"
)

var ErrCustomerNotFound = errors.New("customer not found")

type Customer struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

type Customers interface {
	List(ctx context.Context) ([]Customer, error)
	GetByID(ctx context.Context, customerID int64) (*Customer, error)
}
