package accounts

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
)

var ErrAccountNotFound = errors.New("account not found")

// Account is the lookup aggregate: the row joined with its owner's name.
// Balance is mutated only through LockBalance/UpdateBalance inside the
// transfer engine's transaction.
type Account struct {
	ID            int64
	AccountNumber string
	Balance       decimal.Decimal
	OwnerName     string
}

type Accounts interface {
	GetByID(ctx context.Context, accountID int64) (*Account, error)
	GetByNumber(ctx context.Context, accountNumber string) (*Account, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]Account, error)
	Create(ctx context.Context, customerID int64, accountNumber string, balance decimal.Decimal) (int64, error)
	LockBalance(tx *sql.Tx, accountID int64) (decimal.Decimal, error)
	UpdateBalance(tx *sql.Tx, accountID int64, balance decimal.Decimal) error
}
