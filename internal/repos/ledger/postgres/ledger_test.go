package ledger

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bankledger/internal/infra/pgtestutil"
	"bankledger/internal/repos/ledger"
)

func seedAccount(t *testing.T, db *sql.DB, number, balance string) int64 {
	t.Helper()

	var customerID int64
	err := db.QueryRow(`INSERT INTO customers (name) VALUES ('Arisha Barron') RETURNING id`).Scan(&customerID)
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}

	var accountID int64
	err = db.QueryRow(`
		INSERT INTO accounts (customer_id, account_number, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`, customerID, number, balance).Scan(&accountID)
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return accountID
}

func TestLedger_InsertTransaction(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	accountID := seedAccount(t, db, "acct-tx", "100.00")
	repo := New(db)

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	id, err := repo.InsertTransaction(tx, accountID, "txn-001", "", ledger.TypeTransfer)
	if err != nil {
		t.Fatalf("insert transaction: %v", err)
	}
	if id == 0 {
		t.Fatalf("expected generated id")
	}

	// transaction_number is unique
	_, err = repo.InsertTransaction(tx, accountID, "txn-001", "", ledger.TypeDeposit)
	if !errors.Is(err, ledger.ErrDuplicateTransactionNumber) {
		t.Fatalf("expected ErrDuplicateTransactionNumber, got: %v", err)
	}
}

func TestLedger_InsertTransaction_UnknownType(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	accountID := seedAccount(t, db, "acct-badtype", "0.00")
	repo := New(db)

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	// the (SELECT id FROM transaction_types ...) subquery yields NULL
	_, err = repo.InsertTransaction(tx, accountID, "txn-bad", "", "WITHDRAWAL")
	if err == nil {
		t.Fatalf("expected error for unknown transaction type")
	}
}

func TestLedger_TransferAndDepositLegs(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	fromID := seedAccount(t, db, "acct-from", "100.00")
	toID := seedAccount(t, db, "acct-to", "50.00")
	repo := New(db)

	amount := decimal.RequireFromString("25.00")

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	transferTxID, err := repo.InsertTransaction(tx, fromID, "txn-t", "", ledger.TypeTransfer)
	if err != nil {
		t.Fatalf("insert transfer transaction: %v", err)
	}

	_, err = repo.InsertTransfer(tx, transferTxID, fromID, toID, amount, decimal.RequireFromString("75.00"))
	if err != nil {
		t.Fatalf("insert transfer: %v", err)
	}

	depositTxID, err := repo.InsertTransaction(tx, toID, "txn-d", "", ledger.TypeDeposit)
	if err != nil {
		t.Fatalf("insert deposit transaction: %v", err)
	}

	_, err = repo.InsertDeposit(tx, depositTxID, amount, decimal.RequireFromString("75.00"))
	if err != nil {
		t.Fatalf("insert deposit: %v", err)
	}

	err = tx.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	fromEntries, err := repo.ListEntries(context.Background(), fromID, "")
	if err != nil {
		t.Fatalf("list from entries: %v", err)
	}
	if len(fromEntries) != 1 {
		t.Fatalf("want 1 entry for sender, got %d", len(fromEntries))
	}
	if fromEntries[0].Type != ledger.TypeTransfer {
		t.Fatalf("sender entry type: %s", fromEntries[0].Type)
	}
	if !fromEntries[0].Amount.Equal(amount) {
		t.Fatalf("sender entry amount: %s", fromEntries[0].Amount)
	}

	toEntries, err := repo.ListEntries(context.Background(), toID, "")
	if err != nil {
		t.Fatalf("list to entries: %v", err)
	}
	if len(toEntries) != 1 {
		t.Fatalf("want 1 entry for recipient, got %d", len(toEntries))
	}
	if toEntries[0].Type != ledger.TypeDeposit {
		t.Fatalf("recipient entry type: %s", toEntries[0].Type)
	}
}

func TestLedger_ListEntries_TypeFilter(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	accountID := seedAccount(t, db, "acct-filter", "100.00")
	otherID := seedAccount(t, db, "acct-other", "100.00")
	repo := New(db)

	amount := decimal.RequireFromString("10.00")

	tx, err := db.BeginTx(context.Background(), nil)
	if err != nil {
		t.Fatalf("begin tx: %v", err)
	}
	defer func() { _ = tx.Rollback() }()

	// One outgoing transfer leg and one incoming deposit leg on the same account.
	transferTxID, err := repo.InsertTransaction(tx, accountID, "txn-f1", "", ledger.TypeTransfer)
	if err != nil {
		t.Fatalf("insert transfer transaction: %v", err)
	}
	_, err = repo.InsertTransfer(tx, transferTxID, accountID, otherID, amount, decimal.RequireFromString("90.00"))
	if err != nil {
		t.Fatalf("insert transfer: %v", err)
	}

	depositTxID, err := repo.InsertTransaction(tx, accountID, "txn-f2", "", ledger.TypeDeposit)
	if err != nil {
		t.Fatalf("insert deposit transaction: %v", err)
	}
	_, err = repo.InsertDeposit(tx, depositTxID, amount, decimal.RequireFromString("100.00"))
	if err != nil {
		t.Fatalf("insert deposit: %v", err)
	}

	err = tx.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	all, err := repo.ListEntries(context.Background(), accountID, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 entries, got %d", len(all))
	}

	onlyTransfers, err := repo.ListEntries(context.Background(), accountID, ledger.TypeTransfer)
	if err != nil {
		t.Fatalf("list transfers: %v", err)
	}
	if len(onlyTransfers) != 1 || onlyTransfers[0].Type != ledger.TypeTransfer {
		t.Fatalf("transfer filter mismatch: %+v", onlyTransfers)
	}

	onlyDeposits, err := repo.ListEntries(context.Background(), accountID, ledger.TypeDeposit)
	if err != nil {
		t.Fatalf("list deposits: %v", err)
	}
	if len(onlyDeposits) != 1 || onlyDeposits[0].Type != ledger.TypeDeposit {
		t.Fatalf("deposit filter mismatch: %+v", onlyDeposits)
	}

	none, err := repo.ListEntries(context.Background(), 999_999, "")
	if err != nil {
		t.Fatalf("list empty account: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("want no entries, got %d", len(none))
	}
}
