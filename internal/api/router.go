package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bankledger/internal/services/accounts"
	"bankledger/internal/services/customers"
	"bankledger/internal/services/transfers"
)

// NewRouter constructs the chi router with all API endpoints registered.
func NewRouter(
	customersSrv *customers.CustomerService,
	accountsSrv *accounts.AccountService,
	transfersSrv *transfers.TransferService,
) http.Handler {
	h := NewHandler(customersSrv, accountsSrv, transfersSrv)
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/customers", h.GetCustomersHandler)
	r.Get("/customers/{customerID}/accounts", h.GetAccountsHandler)
	r.Post("/customers/{customerID}/accounts", h.CreateAccountHandler)
	r.Get("/customers/{customerID}/accounts/{accountID}", h.GetAccountHandler)
	r.Get("/customers/{customerID}/accounts/{accountID}/transactions", h.GetTransactionsHandler)
	r.Post("/customers/{customerID}/transfers", h.TransferHandler)

	return r
}
