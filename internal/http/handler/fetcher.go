package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/Splochev/eth-fetcher/internal/core"
	"github.com/Splochev/eth-fetcher/internal/http/handler/middleware"
	"github.com/Splochev/eth-fetcher/internal/http/payload"
)

const authTokenHeader = "AUTH_TOKEN"

var (
	Authenticate         = "POST /authenticate"
	GetTransactions      = "GET /eth"
	GetTransactionsBatch = "GET /eth/{batch}"
	GetAllTransactions   = "GET /all"
	GetMyTransactions    = "GET /my"
)

type FetchHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	fetcher          TransactionService
}

func NewFetchHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, transactionService TransactionService) *FetchHandler {
	return &FetchHandler{
		logs:             logger,
		requestValidator: requestValidator,
		fetcher:          transactionService,
	}
}

func (h *FetchHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	var authPayload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &authPayload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestID)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestID)
		return
	}

	token, err := h.fetcher.Authenticate(r.Context(), authPayload.ToMessage())
	if err != nil {
		resp := Response{
			Message: "Login failed",
		}
		httpCode := http.StatusInternalServerError
		if errors.Is(err, core.ErrInvalidCredentials) {
			httpCode = http.StatusUnauthorized
			resp.Error = err.Error()
		} else {
			resp.Error = "unexpected error occurred"
		}

		h.respond(w, resp, httpCode, requestID)
		h.logs.Errorw("authentication failed",
			"error", err,
			"handler", Authenticate,
			"request_id", requestID)
		return
	}

	resp := map[string]string{
		"token": token,
	}
	h.respond(w, resp, http.StatusOK, requestID)
}

// HandleGetTransactions serves hashes supplied as a query parameter list.
func (h *FetchHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	values, err := url.ParseQuery(r.URL.RawQuery)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("parse query parameters: %w", err).Error(),
		}, http.StatusBadRequest,
			requestID)
		h.logs.Errorw("failed to parse query parameters", "error", err, "handler", GetTransactions, "request_id", requestID)
		return
	}

	_, hashes, err := payload.ExtractEthParams("", values["transactionHashes"])
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestID)
		h.logs.Errorw("failed to extract request parameters",
			"error", err,
			"handler", GetTransactions,
			"request_id", requestID)
		return
	}

	h.resolveAndRespond(w, r, hashes, GetTransactions, requestID)
}

// HandleGetTransactionsBatch serves hashes packed in an RLP-encoded path
// parameter. Supplying a query hash list alongside the batch is rejected.
func (h *FetchHandler) HandleGetTransactionsBatch(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	batch, _, err := payload.ExtractEthParams(r.PathValue("batch"), r.URL.Query()["transactionHashes"])
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   err.Error(),
		}, http.StatusBadRequest,
			requestID)
		h.logs.Errorw("failed to extract request parameters",
			"error", err,
			"handler", GetTransactionsBatch,
			"request_id", requestID)
		return
	}

	hashes, err := h.fetcher.DecodeBatch(batch)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("parse batch parameter: %w", err).Error(),
		}, http.StatusBadRequest,
			requestID)
		h.logs.Errorw("failed to parse batch parameter",
			"error", err,
			"handler", GetTransactionsBatch,
			"request_id", requestID)
		return
	}

	h.logs.Infow("batch request parsed",
		"transactions", hashes,
		"handler", GetTransactionsBatch,
		"request_id", requestID)

	h.resolveAndRespond(w, r, hashes, GetTransactionsBatch, requestID)
}

func (h *FetchHandler) resolveAndRespond(w http.ResponseWriter, r *http.Request, hashes []string, handlerName, requestID string) {
	txRequest := payload.TransactionsRequest{
		Transactions: hashes,
	}
	if err := txRequest.Validate(); err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("validate request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestID)
		h.logs.Errorw("failed to validate request payload",
			"error", err,
			"handler", handlerName,
			"request_id", requestID)
		return
	}

	user := h.optionalUser(r)

	resolved, err := h.fetcher.ResolveTransactions(r.Context(), txRequest.Transactions, user)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not retrieve transactions",
			Error:   fmt.Errorf("resolve transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestID)
		h.logs.Errorw("failed to resolve transactions",
			"error", err,
			"handler", handlerName,
			"request_id", requestID)
		return
	}

	h.logs.Infow("transactions resolved",
		"from_chain", len(resolved.FromChain),
		"from_cache", len(resolved.FromCache),
		"handler", handlerName,
		"request_id", requestID)

	resp := map[string][]core.TransactionRecord{
		"transactions": resolved.Merged(),
	}

	h.respond(w, resp, http.StatusOK, requestID)
}

func (h *FetchHandler) HandleGetMyTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   "AUTH_TOKEN header is required",
		}, http.StatusUnauthorized,
			requestID)
		h.logs.Errorw("missing AUTH_TOKEN header", "handler", GetMyTransactions, "request_id", requestID)
		return
	}

	user, err := h.fetcher.UserFromToken(authToken)
	if err != nil {
		h.respond(w, Response{
			Message: "Authentication failed",
			Error:   err.Error(),
		}, http.StatusUnauthorized,
			requestID)
		h.logs.Errorw("invalid AUTH_TOKEN", "error", err, "handler", GetMyTransactions, "request_id", requestID)
		return
	}

	transactions, err := h.fetcher.GetUserTransactions(r.Context(), user)
	if err != nil {
		h.respond(w, Response{
			Message: "Failed to get user transactions",
			Error:   fmt.Errorf("get user transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestID)
		h.logs.Errorw("failed to get user transactions", "error", err, "handler", GetMyTransactions, "request_id", requestID)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestID)
}

func (h *FetchHandler) HandleGetAllTransactions(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r)

	transactions, err := h.fetcher.GetAllTransactions(r.Context())
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Errorf("get all transactions: %w", err).Error(),
		}, http.StatusInternalServerError,
			requestID)
		h.logs.Errorw("failed to get all transactions",
			"error", err,
			"handler", GetAllTransactions,
			"request_id", requestID)
		return
	}

	resp := map[string][]core.TransactionRecord{
		"transactions": transactions,
	}

	h.respond(w, resp, http.StatusOK, requestID)
}

// optionalUser resolves the principal from the AUTH_TOKEN header if one is
// present and valid. An absent or invalid token means an anonymous caller,
// never an error.
func (h *FetchHandler) optionalUser(r *http.Request) *core.User {
	authToken := r.Header.Get(authTokenHeader)
	if authToken == "" {
		return nil
	}

	user, err := h.fetcher.UserFromToken(authToken)
	if err != nil {
		return nil
	}

	return &user
}

func (h *FetchHandler) respond(w http.ResponseWriter, resp any, code int, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, oopsErr, http.StatusInternalServerError)
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestID)
	}
}

func requestIDFrom(r *http.Request) string {
	requestID, _ := r.Context().Value(middleware.RequestIDKey).(string)
	return requestID
}
