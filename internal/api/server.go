package api

import (
	"fmt"
	"net/http"
	"time"

	"bankledger/internal/services/accounts"
	"bankledger/internal/services/customers"
	"bankledger/internal/services/transfers"
)

// NewServer creates and returns a configured *http.Server for the ledger API.
func NewServer(
	port uint16,
	customersSrv *customers.CustomerService,
	accountsSrv *accounts.AccountService,
	transfersSrv *transfers.TransferService,
) *http.Server {
	mux := NewRouter(customersSrv, accountsSrv, transfersSrv)

	addr := fmt.Sprintf(":%d", port)

	return &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
