package accounts

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"bankledger/internal/infra/pgtestutil"
	"bankledger/internal/repos/accounts"
)

func seedCustomer(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`INSERT INTO customers (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	if err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return id
}

func seedAccount(t *testing.T, db *sql.DB, customerID int64, number, balance string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(`
		INSERT INTO accounts (customer_id, account_number, balance)
		VALUES ($1, $2, $3)
		RETURNING id
	`, customerID, number, balance).Scan(&id)
	if err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return id
}

func TestAccounts_GetByID(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	customerID := seedCustomer(t, db, "Arisha Barron")
	accountID := seedAccount(t, db, customerID, "acct-100", "250.50")

	repo := New(db)
	ctx := context.Background()

	got, err := repo.GetByID(ctx, accountID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}

	if got.AccountNumber != "acct-100" {
		t.Fatalf("account number mismatch: %q", got.AccountNumber)
	}
	if got.OwnerName != "Arisha Barron" {
		t.Fatalf("owner name mismatch: %q", got.OwnerName)
	}
	if !got.Balance.Equal(decimal.RequireFromString("250.50")) {
		t.Fatalf("balance mismatch: %s", got.Balance)
	}

	_, err = repo.GetByID(ctx, 999_999)
	if !errors.Is(err, accounts.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got: %v", err)
	}
}

func TestAccounts_GetByNumber(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	customerID := seedCustomer(t, db, "Branden Gibson")
	seedAccount(t, db, customerID, "acct-200", "0.00")

	repo := New(db)
	ctx := context.Background()

	got, err := repo.GetByNumber(ctx, "acct-200")
	if err != nil {
		t.Fatalf("get by number: %v", err)
	}
	if got.AccountNumber != "acct-200" {
		t.Fatalf("account number mismatch: %q", got.AccountNumber)
	}
	if !got.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", got.Balance)
	}

	_, err = repo.GetByNumber(ctx, "no-such-number")
	if !errors.Is(err, accounts.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got: %v", err)
	}
}

func TestAccounts_ListByCustomer(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	customerID := seedCustomer(t, db, "Rhonda Church")
	otherID := seedCustomer(t, db, "Georgina Hazel")
	seedAccount(t, db, customerID, "acct-301", "10.00")
	seedAccount(t, db, customerID, "acct-302", "20.00")
	seedAccount(t, db, otherID, "acct-303", "30.00")

	repo := New(db)

	got, err := repo.ListByCustomer(context.Background(), customerID)
	if err != nil {
		t.Fatalf("list by customer: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("want 2 accounts, got %d", len(got))
	}
	for _, a := range got {
		if a.OwnerName != "Rhonda Church" {
			t.Fatalf("unexpected owner: %q", a.OwnerName)
		}
	}
}

func TestAccounts_Create(t *testing.T) {
	t.Parallel()

	db, cleanup := pgtestutil.NewTestDB(t)
	defer cleanup()

	customerID := seedCustomer(t, db, "Arisha Barron")

	repo := New(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, customerID, "acct-new", decimal.RequireFromString("1000.00"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("get created: %v", err)
	}
	if got.Balance.StringFixed(2) != "1000.00" {
		t.Fatalf("balance mismatch: %s", got.Balance)
	}

	// account_number is unique
	_, err = repo.Create(ctx, customerID, "acct-new", decimal.Zero)
	if err == nil {
		t.Fatalf("expected unique violation for duplicate account number")
	}
}
