package ledger

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type names as seeded in transaction_types.
const (
	TypeTransfer = "TRANSFER"
	TypeDeposit  = "DEPOSIT"
)

var ErrDuplicateTransactionNumber = errors.New("duplicate transaction number")

// Entry is one row of an account's history: a transfer or deposit leg merged
// with its parent transaction.
type Entry struct {
	ID          int64
	CreatedAt   time.Time
	Description string
	Amount      decimal.Decimal
	Type        string
}

// Ledger writes the transaction/transfer/deposit trail. The insert methods
// run on the caller's *sql.Tx: they are the steps of the atomic transfer
// sequence and must never commit on their own.
type Ledger interface {
	InsertTransaction(tx *sql.Tx, accountID int64, transactionNumber, description, typeName string) (int64, error)
	InsertTransfer(tx *sql.Tx, transactionID, fromAccountID, toAccountID int64, amount, endingAmount decimal.Decimal) (int64, error)
	InsertDeposit(tx *sql.Tx, transactionID int64, amount, endingAmount decimal.Decimal) (int64, error)
	ListEntries(ctx context.Context, accountID int64, typeFilter string) ([]Entry, error)
}
