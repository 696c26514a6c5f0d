package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	repoaccounts "bankledger/internal/repos/accounts"
	repocustomers "bankledger/internal/repos/customers"
	"bankledger/internal/services/accounts"
	"bankledger/internal/services/customers"
	"bankledger/internal/services/transfers"
)

// HandlerProvider wraps the domain services and exposes HTTP handlers.
type HandlerProvider struct {
	customers *customers.CustomerService
	accounts  *accounts.AccountService
	transfers *transfers.TransferService
}

// NewHandler returns a new Handler provider.
func NewHandler(
	customersSrv *customers.CustomerService,
	accountsSrv *accounts.AccountService,
	transfersSrv *transfers.TransferService,
) *HandlerProvider {
	return &HandlerProvider{
		customers: customersSrv,
		accounts:  accountsSrv,
		transfers: transfersSrv,
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode JSON response", "error", err)

		http.Error(w, `{"error":"internal json encode failure"}`, http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// parseIDFromPath reads a positive integer path parameter from chi routes
// like /customers/{customerID}/accounts/{accountID}.
func parseIDFromPath(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	if idStr == "" {
		return 0, fmt.Errorf("missing %s", name)
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}

	return id, nil
}

// resolveCustomer is the 404 gate shared by all customer-scoped routes.
func (h *HandlerProvider) resolveCustomer(w http.ResponseWriter, r *http.Request) (int64, bool) {
	customerID, err := parseIDFromPath(r, "customerID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid customerID in path")
		return 0, false
	}

	_, err = h.customers.GetCustomerByID(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, repocustomers.ErrCustomerNotFound) {
			writeError(w, http.StatusNotFound, "customer not found")
			return 0, false
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return 0, false
	}

	return customerID, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB cap
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("empty body")
		}

		return fmt.Errorf("invalid JSON")
	}

	return nil
}

// --- Response shapes ---

type customerResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type accountResponse struct {
	ID            int64  `json:"id"`
	AccountNumber string `json:"accountNumber"`
	Balance       string `json:"balance"`
	Name          string `json:"name"`
}

type transactionResponse struct {
	ID          int64     `json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
}

func toAccountResponse(a repoaccounts.Account) accountResponse {
	return accountResponse{
		ID:            a.ID,
		AccountNumber: a.AccountNumber,
		Balance:       a.Balance.StringFixed(2),
		Name:          a.OwnerName,
	}
}

// --- Handlers ---

// GetCustomersHandler handles GET /customers
func (h *HandlerProvider) GetCustomersHandler(w http.ResponseWriter, r *http.Request) {
	list, err := h.customers.GetCustomers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]customerResponse, 0, len(list))
	for _, c := range list {
		resp = append(resp, customerResponse{ID: c.ID, Name: c.Name})
	}

	writeJSON(w, http.StatusOK, resp)
}

// GetAccountsHandler handles GET /customers/{customerID}/accounts
func (h *HandlerProvider) GetAccountsHandler(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.resolveCustomer(w, r)
	if !ok {
		return
	}

	list, err := h.accounts.GetAccounts(r.Context(), customerID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]accountResponse, 0, len(list))
	for _, a := range list {
		resp = append(resp, toAccountResponse(a))
	}

	writeJSON(w, http.StatusOK, resp)
}

type createAccountRequest struct {
	Balance string `json:"balance"`
}

// CreateAccountHandler handles POST /customers/{customerID}/accounts
func (h *HandlerProvider) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.resolveCustomer(w, r)
	if !ok {
		return
	}

	var req createAccountRequest
	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Balance == "" {
		writeError(w, http.StatusUnprocessableEntity, "missing required field: balance")
		return
	}

	_, err = h.accounts.CreateAccount(r.Context(), customerID, req.Balance)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrBalanceNotNumeric),
			errors.Is(err, accounts.ErrBalanceNegative):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		default:
			writeError(w, http.StatusConflict, "failed to create account")
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Account successfully created."})
}

// GetAccountHandler handles GET /customers/{customerID}/accounts/{accountID}
func (h *HandlerProvider) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	_, ok := h.resolveCustomer(w, r)
	if !ok {
		return
	}

	accountID, err := parseIDFromPath(r, "accountID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	a, err := h.accounts.GetAccountByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, repoaccounts.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "account not found")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAccountResponse(*a))
}

// GetTransactionsHandler handles
// GET /customers/{customerID}/accounts/{accountID}/transactions?type=TRANSFER
func (h *HandlerProvider) GetTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	_, ok := h.resolveCustomer(w, r)
	if !ok {
		return
	}

	accountID, err := parseIDFromPath(r, "accountID")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid accountID in path")
		return
	}

	_, err = h.accounts.GetAccountByID(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, repoaccounts.ErrAccountNotFound) {
			writeError(w, http.StatusNotFound, "account not found")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	entries, err := h.accounts.GetTransactions(r.Context(), accountID, r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	resp := make([]transactionResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, transactionResponse{
			ID:          e.ID,
			CreatedAt:   e.CreatedAt,
			Description: e.Description,
			Amount:      e.Amount.StringFixed(2),
			Type:        e.Type,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

type transferRequest struct {
	FromAccountNumber string `json:"fromAccountNumber"`
	ToAccountNumber   string `json:"toAccountNumber"`
	Amount            string `json:"amount"`
}

// TransferHandler handles POST /customers/{customerID}/transfers
func (h *HandlerProvider) TransferHandler(w http.ResponseWriter, r *http.Request) {
	_, ok := h.resolveCustomer(w, r)
	if !ok {
		return
	}

	var req transferRequest
	err := decodeBody(w, r, &req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.FromAccountNumber == "" || req.ToAccountNumber == "" || req.Amount == "" {
		writeError(w, http.StatusUnprocessableEntity, "missing required fields")
		return
	}

	if req.FromAccountNumber == req.ToAccountNumber {
		writeError(w, http.StatusUnprocessableEntity, "same sender and recipient account")
		return
	}

	fromAccount, err := h.transfers.GetAccountByNumber(r.Context(), req.FromAccountNumber)
	if err != nil {
		if errors.Is(err, repoaccounts.ErrAccountNotFound) {
			writeError(w, http.StatusUnprocessableEntity, "non-existent sender account")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	toAccount, err := h.transfers.GetAccountByNumber(r.Context(), req.ToAccountNumber)
	if err != nil {
		if errors.Is(err, repoaccounts.ErrAccountNotFound) {
			writeError(w, http.StatusUnprocessableEntity, "non-existent recipient account")
			return
		}

		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	err = h.transfers.Transfer(r.Context(), fromAccount, toAccount, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, transfers.ErrSameAccount),
			errors.Is(err, transfers.ErrAmountNotNumeric),
			errors.Is(err, transfers.ErrAmountNotPositive),
			errors.Is(err, transfers.ErrInsufficientFunds):
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		case errors.Is(err, transfers.ErrTransferFailed):
			writeError(w, http.StatusConflict, "failed to process transfer amount")
			return
		default:
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{"message": "Amount successfully transferred."})
}
