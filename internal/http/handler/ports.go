package handler

import (
	"context"
	"net/http"

	"github.com/Splochev/eth-fetcher/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionService . TransactionService
type TransactionService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	UserFromToken(token string) (core.User, error)
	ResolveTransactions(ctx context.Context, hashes []string, user *core.User) (core.ResolvedTransactions, error)
	DecodeBatch(batchHex string) ([]string, error)
	GetUserTransactions(ctx context.Context, user core.User) ([]core.TransactionRecord, error)
	GetAllTransactions(ctx context.Context) ([]core.TransactionRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
